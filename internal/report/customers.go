package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

var (
	vipSpendThreshold = decimal.NewFromInt(10000)
	vipOrderThreshold = 10
	regularOrderFloor = 3
	fixedSegmentOrder = []entity.Segment{entity.SegmentVIP, entity.SegmentRegular, entity.SegmentNew}
)

// AggregateCustomers builds lifetime-value summaries for every customer in the
// list, folds in orders by customer identifier and classifies each customer
// into a tier. Orders carrying a customer id that is missing from the list
// still produce a row so their spend is not silently dropped.
func AggregateCustomers(customers []entity.Customer, orders []entity.Order) *entity.CustomerReport {
	type acc struct {
		customer entity.Customer
		known    bool
		spent    decimal.Decimal
		count    int
		first    *entity.Order
		last     *entity.Order
	}
	byCustomer := make(map[string]*acc, len(customers))
	for _, c := range customers {
		byCustomer[c.ID] = &acc{customer: c, known: true}
	}

	for i := range orders {
		o := orders[i]
		if o.CustomerID == "" {
			continue
		}
		a, ok := byCustomer[o.CustomerID]
		if !ok {
			a = &acc{customer: entity.Customer{ID: o.CustomerID}}
			byCustomer[o.CustomerID] = a
		}
		a.spent = a.spent.Add(o.TotalAmount)
		a.count++
		if a.first == nil || o.CreatedAt.Before(a.first.CreatedAt) {
			a.first = &orders[i]
		}
		if a.last == nil || o.CreatedAt.After(a.last.CreatedAt) {
			a.last = &orders[i]
		}
	}

	summaries := make([]entity.CustomerSummary, 0, len(byCustomer))
	for id, a := range byCustomer {
		s := entity.CustomerSummary{
			CustomerID: id,
			Name:       displayName(a.customer),
			Email:      a.customer.Email,
			TotalSpent: a.spent,
			OrderCount: a.count,
		}
		if a.count > 0 {
			s.AvgOrderValue = a.spent.Div(decimal.NewFromInt(int64(a.count))).Round(2)
			s.FirstOrder = a.first.CreatedAt
			s.LastOrder = a.last.CreatedAt
		} else {
			s.AvgOrderValue = decimal.Zero
			s.TotalSpent = decimal.Zero
		}
		s.Segment = classify(s.TotalSpent, s.OrderCount)
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].TotalSpent.Equal(summaries[j].TotalSpent) {
			return summaries[i].TotalSpent.GreaterThan(summaries[j].TotalSpent)
		}
		return summaries[i].CustomerID < summaries[j].CustomerID
	})

	return &entity.CustomerReport{
		Customers: summaries,
		Segments:  segmentStats(summaries),
	}
}

// classify evaluates tiers in order VIP, Regular, New; the first match wins,
// so a high spender with few orders is still VIP.
func classify(spent decimal.Decimal, orderCount int) entity.Segment {
	switch {
	case spent.GreaterThanOrEqual(vipSpendThreshold) || orderCount >= vipOrderThreshold:
		return entity.SegmentVIP
	case orderCount >= regularOrderFloor:
		return entity.SegmentRegular
	default:
		return entity.SegmentNew
	}
}

func displayName(c entity.Customer) string {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if name != "" {
		return name
	}
	if c.Email != "" {
		return c.Email
	}
	return "Unknown"
}

func segmentStats(summaries []entity.CustomerSummary) []entity.SegmentStats {
	byTier := make(map[entity.Segment]*entity.SegmentStats, len(fixedSegmentOrder))
	stats := make([]entity.SegmentStats, len(fixedSegmentOrder))
	for i, seg := range fixedSegmentOrder {
		stats[i] = entity.SegmentStats{Segment: seg, TotalValue: decimal.Zero, AvgValue: decimal.Zero}
		byTier[seg] = &stats[i]
	}
	for _, s := range summaries {
		st := byTier[s.Segment]
		st.Customers++
		st.TotalValue = st.TotalValue.Add(s.TotalSpent)
	}
	for i := range stats {
		if stats[i].Customers > 0 {
			stats[i].AvgValue = stats[i].TotalValue.Div(decimal.NewFromInt(int64(stats[i].Customers))).Round(2)
		}
	}
	return stats
}
