package report

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// ErrUnknownReportType marks an export request for a report tag outside the
// closed enum. Callers dispatch over entity.ReportType, so hitting this is a
// programming error and must fail loudly, never degrade to a default document.
var ErrUnknownReportType = errors.New("unknown report type")

var exportTitles = map[entity.ReportType]string{
	entity.ReportSales:     "Sales Report",
	entity.ReportProducts:  "Product Performance Report",
	entity.ReportCustomers: "Customer Report",
	entity.ReportPayments:  "Payment Report",
	entity.ReportCoupons:   "Coupon Usage Report",
	entity.ReportInventory: "Inventory Report",
}

// BuildExportDocument maps an aggregated report onto the fixed tabular schema
// for the CSV/PDF writers. Cells are always strings: numeric fields render as
// fixed-point decimals defaulting to 0, absent strings render empty.
func BuildExportDocument(rep *entity.Report) (*entity.ExportDocument, error) {
	title, ok := exportTitles[rep.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, rep.Type)
	}
	doc := &entity.ExportDocument{
		Title: title,
		Range: rep.Range,
	}

	switch rep.Type {
	case entity.ReportSales:
		doc.Headers = []string{"Period", "Revenue", "Orders", "Customers", "Avg Order Value"}
		if rep.Sales != nil {
			for _, p := range rep.Sales.Points {
				doc.Rows = append(doc.Rows, []string{
					p.Period,
					p.Revenue.StringFixed(2),
					strconv.Itoa(p.Orders),
					strconv.Itoa(p.Customers),
					p.AvgOrderValue.StringFixed(2),
				})
			}
		}
	case entity.ReportProducts:
		doc.Headers = []string{"Product Name", "Units Sold", "Revenue", "Orders", "Avg Price"}
		for _, p := range rep.Products {
			doc.Rows = append(doc.Rows, []string{
				p.Name,
				strconv.Itoa(p.UnitsSold),
				p.Revenue.StringFixed(2),
				strconv.Itoa(p.OrderCount),
				p.AvgPrice.StringFixed(2),
			})
		}
	case entity.ReportCustomers:
		doc.Headers = []string{"Customer", "Email", "Total Spent", "Orders", "Avg Order Value", "Last Order"}
		if rep.Customers != nil {
			for _, c := range rep.Customers.Customers {
				doc.Rows = append(doc.Rows, []string{
					c.Name,
					c.Email,
					c.TotalSpent.StringFixed(2),
					strconv.Itoa(c.OrderCount),
					c.AvgOrderValue.StringFixed(2),
					formatDate(c.LastOrder),
				})
			}
		}
	case entity.ReportPayments:
		doc.Headers = []string{"Payment Method", "Amount", "Status", "Date"}
		if rep.Payments != nil {
			for _, p := range rep.Payments.Records {
				method := p.Method
				if method == "" {
					method = "Unknown"
				}
				doc.Rows = append(doc.Rows, []string{
					method,
					p.Amount.StringFixed(2),
					p.Status,
					formatDate(p.CreatedAt),
				})
			}
		}
	case entity.ReportCoupons:
		doc.Headers = []string{"Coupon Code", "Usage", "Discount Amount", "Revenue Generated"}
		for _, c := range rep.Coupons {
			doc.Rows = append(doc.Rows, []string{
				c.Code,
				strconv.Itoa(c.UsageCount),
				c.DiscountAmount.StringFixed(2),
				c.Revenue.StringFixed(2),
			})
		}
	case entity.ReportInventory:
		doc.Headers = []string{"Product", "Stock Level", "Value"}
		for _, s := range rep.Inventory {
			doc.Rows = append(doc.Rows, []string{
				s.Name,
				strconv.Itoa(s.StockLevel),
				s.Value.StringFixed(2),
			})
		}
	}
	return doc, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
