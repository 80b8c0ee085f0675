package entity

import "github.com/shopspring/decimal"

// Coupon is a catalog entry. Usage is derived from orders at report time,
// not read from stored counters.
type Coupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Active   bool            `json:"active"`
}
