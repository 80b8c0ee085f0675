package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

func TestBuildExportDocumentHeaders(t *testing.T) {
	rng := entity.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 31)}
	tests := []struct {
		rt      entity.ReportType
		title   string
		headers []string
	}{
		{entity.ReportSales, "Sales Report", []string{"Period", "Revenue", "Orders", "Customers", "Avg Order Value"}},
		{entity.ReportProducts, "Product Performance Report", []string{"Product Name", "Units Sold", "Revenue", "Orders", "Avg Price"}},
		{entity.ReportCustomers, "Customer Report", []string{"Customer", "Email", "Total Spent", "Orders", "Avg Order Value", "Last Order"}},
		{entity.ReportPayments, "Payment Report", []string{"Payment Method", "Amount", "Status", "Date"}},
		{entity.ReportCoupons, "Coupon Usage Report", []string{"Coupon Code", "Usage", "Discount Amount", "Revenue Generated"}},
		{entity.ReportInventory, "Inventory Report", []string{"Product", "Stock Level", "Value"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.rt), func(t *testing.T) {
			doc, err := BuildExportDocument(&entity.Report{Type: tt.rt, Range: rng})
			require.NoError(t, err)
			assert.Equal(t, tt.title, doc.Title)
			assert.Equal(t, tt.headers, doc.Headers)
			assert.Equal(t, rng, doc.Range)
		})
	}
}

func TestBuildExportDocumentUnknownTypeFailsLoudly(t *testing.T) {
	_, err := BuildExportDocument(&entity.Report{Type: entity.ReportType("bogus")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownReportType)
}

func TestBuildExportDocumentSalesRows(t *testing.T) {
	rep := &entity.Report{
		Type:  entity.ReportSales,
		Range: entity.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 2)},
		Sales: &entity.SalesReport{
			Points: []entity.PeriodPoint{
				{Period: "2024-01-01", Revenue: dec(150), Orders: 2, Customers: 1, AvgOrderValue: dec(75)},
				{Period: "2024-01-02"},
			},
		},
	}

	doc, err := BuildExportDocument(rep)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"2024-01-01", "150.00", "2", "1", "75.00"}, doc.Rows[0])
	assert.Equal(t, []string{"2024-01-02", "0.00", "0", "0", "0.00"}, doc.Rows[1])
}

func TestBuildExportDocumentNoEmptyCells(t *testing.T) {
	// malformed records degrade to defaults, never to null cells
	rep := &entity.Report{
		Type:  entity.ReportPayments,
		Range: entity.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 31)},
		Payments: &entity.PaymentReport{
			Records: []entity.Payment{{ID: "p1"}},
		},
	}

	doc, err := BuildExportDocument(rep)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	require.Len(t, doc.Rows[0], len(doc.Headers))
	assert.Equal(t, "Unknown", doc.Rows[0][0])
	assert.Equal(t, "0.00", doc.Rows[0][1])
	assert.Equal(t, "", doc.Rows[0][2])
	assert.Equal(t, "", doc.Rows[0][3])
}

func TestBuildExportDocumentCustomerRows(t *testing.T) {
	rep := &entity.Report{
		Type:  entity.ReportCustomers,
		Range: entity.DateRange{From: date(2024, 1, 1), To: date(2024, 1, 31)},
		Customers: &entity.CustomerReport{
			Customers: []entity.CustomerSummary{{
				CustomerID:    "c1",
				Name:          "Jane Doe",
				Email:         "jane@example.com",
				TotalSpent:    dec(300),
				OrderCount:    3,
				AvgOrderValue: dec(100),
				LastOrder:     date(2024, 1, 20),
			}},
		},
	}

	doc, err := BuildExportDocument(rep)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", "300.00", "3", "100.00", "2024-01-20"}, doc.Rows[0])
}
