package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a raw payment record after ingestion normalization: the
// upstream's method/paymentMethod and status/paymentStatus synonym pairs are
// already resolved into Method, Status and Succeeded.
type Payment struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Succeeded bool            `json:"succeeded"`
	CreatedAt time.Time       `json:"createdAt"`
}
