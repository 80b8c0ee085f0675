package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

func TestPreviousPeriodEqualLength(t *testing.T) {
	// 29 inclusive days; the previous window ends exactly at the current start.
	current := entity.DateRange{From: date(2024, 2, 1), To: date(2024, 2, 29)}

	prev := PreviousPeriod(current)
	assert.Equal(t, date(2024, 1, 3), prev.From)
	assert.Equal(t, date(2024, 2, 1), prev.To)
}

func TestPreviousPeriodSingleDay(t *testing.T) {
	current := entity.DateRange{From: date(2024, 1, 10), To: date(2024, 1, 10)}

	prev := PreviousPeriod(current)
	assert.Equal(t, date(2024, 1, 9), prev.From)
	assert.Equal(t, date(2024, 1, 10), prev.To)
}

func TestCompareChangePct(t *testing.T) {
	prev := entity.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 31)}
	prevOrders := []entity.Order{
		order("p1", date(2024, 1, 5), 60, "c1"),
		order("p2", date(2024, 1, 20), 40, "c2"),
	}

	cmp := Compare(decimal.NewFromInt(150), prevOrders, prev)
	require.NotNil(t, cmp)
	assert.Equal(t, "100", cmp.Revenue.String())
	assert.InDelta(t, 50.0, cmp.ChangePct, 0.0001)
	assert.Equal(t, prev, cmp.Period)
}

func TestCompareZeroPreviousIsZeroNotInf(t *testing.T) {
	prev := entity.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 31)}

	cmp := Compare(decimal.NewFromInt(500), nil, prev)
	assert.True(t, cmp.Revenue.IsZero())
	assert.Equal(t, 0.0, cmp.ChangePct)
}

func TestCompareUpperBoundExclusive(t *testing.T) {
	// prev.To equals the current start; an order on that day belongs to the
	// current period, not the previous one.
	prev := entity.DateRange{From: date(2024, 1, 1), To: date(2024, 2, 1)}
	prevOrders := []entity.Order{
		order("p1", date(2024, 1, 15), 100, "c1"),
		order("boundary", date(2024, 2, 1), 999, "c2"),
	}

	cmp := Compare(decimal.NewFromInt(100), prevOrders, prev)
	assert.Equal(t, "100", cmp.Revenue.String())
	assert.InDelta(t, 0.0, cmp.ChangePct, 0.0001)
}
