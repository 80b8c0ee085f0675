package report

import (
	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// PreviousPeriod returns a window of the same inclusive day count ending
// exactly at the current start. For [2024-02-01, 2024-02-29] (29 days) the
// previous period is [2024-01-03, 2024-02-01].
func PreviousPeriod(rng entity.DateRange) entity.DateRange {
	days := int(rng.To.Sub(rng.From).Hours()/24) + 1
	return entity.DateRange{
		From: rng.From.AddDate(0, 0, -days),
		To:   rng.From,
	}
}

// Compare sums revenue over the previous period and produces the headline
// percentage change against it.
func Compare(current decimal.Decimal, prevOrders []entity.Order, prev entity.DateRange) *entity.Comparison {
	prevRevenue := decimal.Zero
	for _, o := range prevOrders {
		// The previous window ends at the current start, so the upper
		// bound is exclusive to keep the two periods disjoint.
		if o.CreatedAt.Before(prev.From) || !o.CreatedAt.Before(prev.To) {
			continue
		}
		prevRevenue = prevRevenue.Add(o.TotalAmount)
	}
	return &entity.Comparison{
		Period:    prev,
		Revenue:   prevRevenue,
		ChangePct: changePct(current, prevRevenue),
	}
}

// changePct is (current-previous)/previous*100, 0 when previous is 0 so the
// UI never sees Inf or NaN.
func changePct(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	f, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return f
}
