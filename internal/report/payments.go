package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// AggregatePayments computes the success rate and per-method breakdown.
// Success is decided at ingestion (see commerceapi.PaymentSucceeded); the
// method falls back to "Unknown" when the record carries none.
func AggregatePayments(payments []entity.Payment) *entity.PaymentReport {
	rep := &entity.PaymentReport{
		Total:       len(payments),
		SuccessRate: decimal.Zero,
		Records:     payments,
	}

	type acc struct {
		amount decimal.Decimal
		count  int
	}
	byMethod := make(map[string]*acc)
	for _, p := range payments {
		if p.Succeeded {
			rep.Successful++
		}
		method := p.Method
		if method == "" {
			method = "Unknown"
		}
		a, ok := byMethod[method]
		if !ok {
			a = &acc{}
			byMethod[method] = a
		}
		a.amount = a.amount.Add(p.Amount)
		a.count++
	}

	if rep.Total > 0 {
		rep.SuccessRate = decimal.NewFromInt(int64(rep.Successful * 100)).
			Div(decimal.NewFromInt(int64(rep.Total))).Round(2)
	}

	rep.Methods = make([]entity.PaymentMethodSummary, 0, len(byMethod))
	for method, a := range byMethod {
		rep.Methods = append(rep.Methods, entity.PaymentMethodSummary{
			Method: method,
			Amount: a.amount,
			Count:  a.count,
		})
	}
	sort.Slice(rep.Methods, func(i, j int) bool {
		if !rep.Methods[i].Amount.Equal(rep.Methods[j].Amount) {
			return rep.Methods[i].Amount.GreaterThan(rep.Methods[j].Amount)
		}
		return rep.Methods[i].Method < rep.Methods[j].Method
	})
	return rep
}
