package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// AggregateProducts accumulates per-product units, revenue and a distinct
// order count from order line items and returns summaries sorted by revenue.
// Items without a product identifier are skipped so they cannot pollute the
// ranking with a synthetic "Unknown" row.
func AggregateProducts(orders []entity.Order) []entity.ProductSummary {
	type acc struct {
		name     string
		units    int
		revenue  decimal.Decimal
		orderIDs map[string]struct{}
		avgPrice decimal.Decimal
	}
	byProduct := make(map[string]*acc)

	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == "" {
				continue
			}
			a, ok := byProduct[item.ProductID]
			if !ok {
				a = &acc{orderIDs: make(map[string]struct{})}
				byProduct[item.ProductID] = a
			}
			if item.ProductName != "" {
				a.name = item.ProductName
			}
			a.units += item.Quantity
			a.revenue = a.revenue.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
			a.orderIDs[o.ID] = struct{}{}
			// Last observed price wins; the source reports this field
			// that way rather than a weighted average.
			a.avgPrice = item.UnitPrice
		}
	}

	summaries := make([]entity.ProductSummary, 0, len(byProduct))
	for id, a := range byProduct {
		summaries = append(summaries, entity.ProductSummary{
			ProductID:  id,
			Name:       a.name,
			UnitsSold:  a.units,
			Revenue:    a.revenue,
			OrderCount: len(a.orderIDs),
			AvgPrice:   a.avgPrice,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Revenue.Equal(summaries[j].Revenue) {
			return summaries[i].Revenue.GreaterThan(summaries[j].Revenue)
		}
		return summaries[i].ProductID < summaries[j].ProductID
	})
	return summaries
}
