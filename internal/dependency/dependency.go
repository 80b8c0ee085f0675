package dependency

import (
	"context"
	"io"

	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

type (
	// CommerceData is the upstream data collaborator. All ranges are
	// inclusive calendar dates; filtering to the exact reporting window is
	// the aggregators' job, so implementations may over-fetch.
	CommerceData interface {
		GetOrders(ctx context.Context, rng entity.DateRange) ([]entity.Order, error)
		GetPayments(ctx context.Context, rng entity.DateRange) ([]entity.Payment, error)
		GetCoupons(ctx context.Context) ([]entity.Coupon, error)
		GetCustomers(ctx context.Context) ([]entity.Customer, error)
		GetStock(ctx context.Context) ([]entity.StockItem, error)
	}

	// ExportEncoder turns a normalized export document into bytes. The CSV
	// implementation lives in internal/export; PDF is an external writer.
	ExportEncoder interface {
		Encode(w io.Writer, doc *entity.ExportDocument) error
		ContentType() string
		FileExtension() string
	}
)
