package report

import (
	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// AggregateCoupons scans orders for coupon usage and merges the result onto
// the full catalog: catalog membership, not usage presence, decides the output
// rows, so never-used coupons appear with zeroes. Codes referenced by orders
// but absent from the catalog are dropped. Output keeps catalog order.
func AggregateCoupons(catalog []entity.Coupon, orders []entity.Order) []entity.CouponSummary {
	type usage struct {
		count    int
		discount decimal.Decimal
		revenue  decimal.Decimal
	}
	byCode := make(map[string]*usage)
	for _, o := range orders {
		if o.CouponCode == "" {
			continue
		}
		u, ok := byCode[o.CouponCode]
		if !ok {
			u = &usage{}
			byCode[o.CouponCode] = u
		}
		u.count++
		u.discount = u.discount.Add(o.DiscountAmount)
		u.revenue = u.revenue.Add(o.TotalAmount)
	}

	summaries := make([]entity.CouponSummary, 0, len(catalog))
	for _, c := range catalog {
		s := entity.CouponSummary{
			Code:           c.Code,
			DiscountAmount: decimal.Zero,
			Revenue:        decimal.Zero,
		}
		if u, ok := byCode[c.Code]; ok {
			s.UsageCount = u.count
			s.DiscountAmount = u.discount
			s.Revenue = u.revenue
		}
		summaries = append(summaries, s)
	}
	return summaries
}
