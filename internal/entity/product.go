package entity

import "github.com/shopspring/decimal"

// StockItem is one row of the inventory snapshot.
type StockItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	StockLevel  int             `json:"stockLevel"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}
