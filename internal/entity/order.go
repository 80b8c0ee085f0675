package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order as returned by the commerce data API.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order is a raw, denormalized order record. Immutable once fetched; it lives
// only for the duration of a single report computation.
type Order struct {
	ID             string          `json:"id"`
	CreatedAt      time.Time       `json:"createdAt"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	CouponCode     string          `json:"couponCode,omitempty"`
	CustomerID     string          `json:"customerId,omitempty"`
	Items          []OrderItem     `json:"items,omitempty"`
}
