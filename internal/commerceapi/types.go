package commerceapi

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// Wire shapes of the commerce data API. The upstream is not canonicalized:
// payments carry method/paymentMethod and status/paymentStatus as separate
// optional fields, orders reference a coupon either by a direct code field or
// a nested coupon object. Normalization happens here, once, so the
// aggregators never repeat the fallback chains.

type orderWire struct {
	ID             string          `json:"id"`
	CreatedAt      string          `json:"createdAt"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	CouponCode     string          `json:"couponCode"`
	Coupon         *struct {
		Code string `json:"code"`
	} `json:"coupon"`
	CustomerID string `json:"customerId"`
	Items      []struct {
		ProductID   string          `json:"productId"`
		ProductName string          `json:"productName"`
		Quantity    int             `json:"quantity"`
		UnitPrice   decimal.Decimal `json:"unitPrice"`
	} `json:"items"`
}

type paymentWire struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"orderId"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	CreatedAt     string          `json:"createdAt"`
}

type couponWire struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Active   bool            `json:"active"`
}

type customerWire struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type stockWire struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	StockLevel  int             `json:"stockLevel"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func (w orderWire) toEntity() entity.Order {
	o := entity.Order{
		ID:             w.ID,
		CreatedAt:      parseTimestamp(w.CreatedAt),
		TotalAmount:    w.TotalAmount,
		DiscountAmount: w.DiscountAmount,
		CouponCode:     w.CouponCode,
		CustomerID:     w.CustomerID,
	}
	if o.CouponCode == "" && w.Coupon != nil {
		o.CouponCode = w.Coupon.Code
	}
	for _, it := range w.Items {
		o.Items = append(o.Items, entity.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return o
}

func (w paymentWire) toEntity() entity.Payment {
	method := w.Method
	if method == "" {
		method = w.PaymentMethod
	}
	if method == "" {
		method = "Unknown"
	}
	status := w.Status
	if status == "" {
		status = w.PaymentStatus
	}
	return entity.Payment{
		ID:        w.ID,
		OrderID:   w.OrderID,
		Amount:    w.Amount,
		Method:    method,
		Status:    status,
		Succeeded: PaymentSucceeded(w.Status, w.PaymentStatus),
		CreatedAt: parseTimestamp(w.CreatedAt),
	}
}

// PaymentSucceeded applies the upstream's synonym vocabulary: status is one
// of {completed, success}, or the distinct paymentStatus field says paid.
// Matching is case-sensitive; the upstream never canonicalizes.
func PaymentSucceeded(status, paymentStatus string) bool {
	return status == "completed" || status == "success" || paymentStatus == "paid"
}

func (w customerWire) toEntity() entity.Customer {
	return entity.Customer{
		ID:        w.ID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     w.Email,
		CreatedAt: parseTimestamp(w.CreatedAt),
	}
}

func (w couponWire) toEntity() entity.Coupon {
	return entity.Coupon{Code: w.Code, Discount: w.Discount, Active: w.Active}
}

func (w stockWire) toEntity() entity.StockItem {
	return entity.StockItem{
		ProductID:   w.ProductID,
		ProductName: w.ProductName,
		StockLevel:  w.StockLevel,
		UnitPrice:   w.UnitPrice,
	}
}

// parseTimestamp accepts RFC 3339 or a bare calendar date; anything else
// degrades to the zero time rather than failing the whole fetch.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
