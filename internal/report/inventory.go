package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// AggregateInventory values the stock snapshot (level times unit price) and
// ranks products by tied-up value.
func AggregateInventory(stock []entity.StockItem) []entity.InventorySummary {
	summaries := make([]entity.InventorySummary, 0, len(stock))
	for _, s := range stock {
		summaries = append(summaries, entity.InventorySummary{
			ProductID:  s.ProductID,
			Name:       s.ProductName,
			StockLevel: s.StockLevel,
			Value:      s.UnitPrice.Mul(decimal.NewFromInt(int64(s.StockLevel))),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Value.Equal(summaries[j].Value) {
			return summaries[i].Value.GreaterThan(summaries[j].Value)
		}
		return summaries[i].ProductID < summaries[j].ProductID
	})
	return summaries
}
