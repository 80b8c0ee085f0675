package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// BucketOrders groups orders into day/week/month buckets over the inclusive
// range and returns one PeriodPoint per bucket in chronological order.
// Buckets with no orders are zero-filled so charts stay continuous; an empty
// order list returns an empty series, which the UI renders as its explicit
// "no data" state.
func BucketOrders(orders []entity.Order, rng entity.DateRange, g entity.Granularity) []entity.PeriodPoint {
	if len(orders) == 0 {
		return nil
	}

	type acc struct {
		revenue   decimal.Decimal
		orders    int
		customers map[string]struct{}
	}
	buckets := make(map[string]*acc)

	endExclusive := rng.To.AddDate(0, 0, 1)
	for _, o := range orders {
		if o.CreatedAt.Before(rng.From) || !o.CreatedAt.Before(endExclusive) {
			continue
		}
		key := bucketStart(o.CreatedAt, g).Format("2006-01-02")
		a, ok := buckets[key]
		if !ok {
			a = &acc{customers: make(map[string]struct{})}
			buckets[key] = a
		}
		a.revenue = a.revenue.Add(o.TotalAmount)
		a.orders++
		if o.CustomerID != "" {
			a.customers[o.CustomerID] = struct{}{}
		}
	}

	var points []entity.PeriodPoint
	cur := bucketStart(rng.From, g)
	end := bucketStart(rng.To, g)
	for !cur.After(end) {
		key := cur.Format("2006-01-02")
		p := entity.PeriodPoint{
			Period:        periodLabel(cur, g),
			Revenue:       decimal.Zero,
			AvgOrderValue: decimal.Zero,
		}
		if a, ok := buckets[key]; ok {
			p.Revenue = a.revenue
			p.Orders = a.orders
			p.Customers = len(a.customers)
			if a.orders > 0 {
				p.AvgOrderValue = a.revenue.Div(decimal.NewFromInt(int64(a.orders))).Round(2)
			}
		}
		points = append(points, p)
		cur = bucketNext(cur, g)
	}
	return points
}

func periodLabel(t time.Time, g entity.Granularity) string {
	if g == entity.GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

func bucketStart(t time.Time, g entity.Granularity) time.Time {
	loc := t.Location()
	switch g {
	case entity.GranularityWeek:
		// Monday 00:00
		weekday := int(t.Weekday())
		daysBack := (weekday + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-daysBack, 0, 0, 0, 0, loc)
	case entity.GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

func bucketNext(t time.Time, g entity.Granularity) time.Time {
	switch g {
	case entity.GranularityWeek:
		return t.AddDate(0, 0, 7)
	case entity.GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
