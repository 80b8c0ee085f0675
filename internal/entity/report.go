package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType enumerates the six back-office reports. The set is closed:
// dispatch and export formatting are exhaustive over it.
type ReportType string

const (
	ReportSales     ReportType = "sales"
	ReportProducts  ReportType = "products"
	ReportCustomers ReportType = "customers"
	ReportPayments  ReportType = "payments"
	ReportCoupons   ReportType = "coupons"
	ReportInventory ReportType = "inventory"
)

// ParseReportType validates a report type tag coming from the outside.
func ParseReportType(s string) (ReportType, error) {
	switch rt := ReportType(s); rt {
	case ReportSales, ReportProducts, ReportCustomers, ReportPayments, ReportCoupons, ReportInventory:
		return rt, nil
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

// Granularity controls time bucket size for the sales series (day, week, month).
type Granularity int

const (
	GranularityDay Granularity = iota + 1
	GranularityWeek
	GranularityMonth
)

// ParseGranularity accepts both the UI vocabulary (daily/weekly/monthly) and
// the bucketer's own (day/week/month).
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "", "daily", "day":
		return GranularityDay, nil
	case "weekly", "week":
		return GranularityWeek, nil
	case "monthly", "month":
		return GranularityMonth, nil
	}
	return 0, fmt.Errorf("unknown granularity %q", s)
}

// DateRange is an inclusive pair of calendar dates.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// PeriodPoint is one bucket of the sales time series.
type PeriodPoint struct {
	Period        string          `json:"period"`
	Revenue       decimal.Decimal `json:"revenue"`
	Orders        int             `json:"orders"`
	Customers     int             `json:"customers"`
	AvgOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// Comparison carries the previous-period headline revenue and its
// percentage change. ChangePct is 0 when the previous revenue is 0.
type Comparison struct {
	Period    DateRange       `json:"period"`
	Revenue   decimal.Decimal `json:"revenue"`
	ChangePct float64         `json:"changePct"`
}

type SalesReport struct {
	Points        []PeriodPoint   `json:"points"`
	Revenue       decimal.Decimal `json:"revenue"`
	Orders        int             `json:"orders"`
	AvgOrderValue decimal.Decimal `json:"averageOrderValue"`
	Comparison    *Comparison     `json:"comparison,omitempty"`
}

type ProductSummary struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	UnitsSold  int             `json:"unitsSold"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"orderCount"`
	// AvgPrice is the most recently observed unit price for the product,
	// not a weighted average. Kept as the reporting source defines it.
	AvgPrice decimal.Decimal `json:"avgPrice"`
}

// Segment is a coarse customer tier derived from spend and order count.
type Segment string

const (
	SegmentVIP     Segment = "VIP"
	SegmentRegular Segment = "Regular"
	SegmentNew     Segment = "New"
)

type CustomerSummary struct {
	CustomerID    string          `json:"customerId"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	OrderCount    int             `json:"orderCount"`
	AvgOrderValue decimal.Decimal `json:"averageOrderValue"`
	FirstOrder    time.Time       `json:"firstOrder"`
	LastOrder     time.Time       `json:"lastOrder"`
	Segment       Segment         `json:"segment"`
}

type SegmentStats struct {
	Segment    Segment         `json:"segment"`
	Customers  int             `json:"customers"`
	TotalValue decimal.Decimal `json:"totalValue"`
	AvgValue   decimal.Decimal `json:"avgValue"`
}

type CustomerReport struct {
	Customers []CustomerSummary `json:"customers"`
	Segments  []SegmentStats    `json:"segments"`
}

type CouponSummary struct {
	Code           string          `json:"code"`
	UsageCount     int             `json:"usageCount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	// Revenue is attributed revenue: the total of orders that used the code.
	Revenue decimal.Decimal `json:"revenue"`
}

type PaymentMethodSummary struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type PaymentReport struct {
	Total       int                    `json:"total"`
	Successful  int                    `json:"successful"`
	SuccessRate decimal.Decimal        `json:"successRate"`
	Methods     []PaymentMethodSummary `json:"methods"`
	Records     []Payment              `json:"records"`
}

type InventorySummary struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	StockLevel int             `json:"stockLevel"`
	Value      decimal.Decimal `json:"value"`
}

// Report is the result of one fetch-and-aggregate cycle. Exactly one payload
// section is populated, matching Type.
type Report struct {
	Type        ReportType         `json:"type"`
	Range       DateRange          `json:"range"`
	Granularity Granularity        `json:"granularity,omitempty"`
	Sales       *SalesReport       `json:"sales,omitempty"`
	Products    []ProductSummary   `json:"products,omitempty"`
	Customers   *CustomerReport    `json:"customers,omitempty"`
	Payments    *PaymentReport     `json:"payments,omitempty"`
	Coupons     []CouponSummary    `json:"coupons,omitempty"`
	Inventory   []InventorySummary `json:"inventory,omitempty"`
}

// ExportDocument is the normalized tabular hand-off for the CSV/PDF writers.
// Cells are pre-rendered strings so a writer never sees a null value.
type ExportDocument struct {
	Title   string     `json:"title"`
	Range   DateRange  `json:"range"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
