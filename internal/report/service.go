package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/velora-commerce/backoffice-manager/internal/dependency"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
	"golang.org/x/sync/errgroup"
)

// ErrStale is returned by Refresh when a newer selection superseded the
// computation while its fetch was in flight.
var ErrStale = errors.New("report selection changed while computing")

// Params selects one report computation. Aggregation is a pure function of
// these parameters and the fetched raw records.
type Params struct {
	Type        entity.ReportType
	Range       entity.DateRange
	Granularity entity.Granularity
	Compare     bool
}

// Service runs fetch-and-aggregate cycles against the commerce data API.
// Every cycle starts from fresh accumulators; no aggregation state survives
// between report types.
type Service struct {
	data dependency.CommerceData

	gen     atomic.Uint64
	mu      sync.RWMutex
	current *entity.Report
}

func New(data dependency.CommerceData) *Service {
	return &Service{data: data}
}

// Generate performs one fetch-and-aggregate cycle. A failed upstream fetch is
// logged and comes back as an empty report for the requested type together
// with the error, so one report's failure never leaks into another's render.
func (s *Service) Generate(ctx context.Context, p Params) (*entity.Report, error) {
	if p.Granularity == 0 {
		p.Granularity = entity.GranularityDay
	}
	rep := &entity.Report{Type: p.Type, Range: p.Range}

	var err error
	switch p.Type {
	case entity.ReportSales:
		rep.Granularity = p.Granularity
		err = s.generateSales(ctx, rep, p)
	case entity.ReportProducts:
		var orders []entity.Order
		if orders, err = s.data.GetOrders(ctx, p.Range); err == nil {
			rep.Products = AggregateProducts(orders)
		}
	case entity.ReportCustomers:
		var customers []entity.Customer
		var orders []entity.Order
		if customers, orders, err = s.fetchCustomersAndOrders(ctx, p.Range); err == nil {
			rep.Customers = AggregateCustomers(customers, orders)
		}
	case entity.ReportPayments:
		var payments []entity.Payment
		if payments, err = s.data.GetPayments(ctx, p.Range); err == nil {
			rep.Payments = AggregatePayments(payments)
		}
	case entity.ReportCoupons:
		var coupons []entity.Coupon
		var orders []entity.Order
		if coupons, orders, err = s.fetchCouponsAndOrders(ctx, p.Range); err == nil {
			rep.Coupons = AggregateCoupons(coupons, orders)
		}
	case entity.ReportInventory:
		var stock []entity.StockItem
		if stock, err = s.data.GetStock(ctx); err == nil {
			rep.Inventory = AggregateInventory(stock)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, p.Type)
	}

	if err != nil {
		slog.Default().ErrorContext(ctx, "report fetch failed",
			slog.String("report", string(p.Type)),
			slog.String("err", err.Error()),
		)
		return rep, fmt.Errorf("fetch %s report data: %w", p.Type, err)
	}
	return rep, nil
}

// Refresh runs Generate for the now-current selection and publishes the
// result. If another Refresh started meanwhile, the late result is dropped
// and ErrStale returned, so an old selection can never overwrite a new one.
func (s *Service) Refresh(ctx context.Context, p Params) (*entity.Report, error) {
	token := s.gen.Add(1)

	rep, err := s.Generate(ctx, p)
	if err != nil {
		return rep, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen.Load() {
		return nil, ErrStale
	}
	s.current = rep
	return rep, nil
}

// Current returns the last published report, or nil before the first Refresh.
func (s *Service) Current() *entity.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) generateSales(ctx context.Context, rep *entity.Report, p Params) error {
	orders, err := s.data.GetOrders(ctx, p.Range)
	if err != nil {
		return err
	}

	sales := &entity.SalesReport{
		Points:        BucketOrders(orders, p.Range, p.Granularity),
		Revenue:       decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}
	for _, pt := range sales.Points {
		sales.Revenue = sales.Revenue.Add(pt.Revenue)
		sales.Orders += pt.Orders
	}
	if sales.Orders > 0 {
		sales.AvgOrderValue = sales.Revenue.Div(decimal.NewFromInt(int64(sales.Orders))).Round(2)
	}

	// The previous period is fetched only on request; an inactive toggle
	// must not cost a second upstream round trip.
	if p.Compare {
		prev := PreviousPeriod(p.Range)
		prevOrders, err := s.data.GetOrders(ctx, prev)
		if err != nil {
			return err
		}
		sales.Comparison = Compare(sales.Revenue, prevOrders, prev)
	}
	rep.Sales = sales
	return nil
}

func (s *Service) fetchCustomersAndOrders(ctx context.Context, rng entity.DateRange) ([]entity.Customer, []entity.Order, error) {
	var (
		customers []entity.Customer
		orders    []entity.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.data.GetCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.data.GetOrders(gctx, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return customers, orders, nil
}

func (s *Service) fetchCouponsAndOrders(ctx context.Context, rng entity.DateRange) ([]entity.Coupon, []entity.Order, error) {
	var (
		coupons []entity.Coupon
		orders  []entity.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		coupons, err = s.data.GetCoupons(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.data.GetOrders(gctx, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return coupons, orders, nil
}
