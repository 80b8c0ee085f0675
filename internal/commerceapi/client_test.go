package commerceapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestGetOrdersNormalizesWireShapes(t *testing.T) {
	var gotRequestID string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "2024-02-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-02-29", r.URL.Query().Get("to"))
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"orders":[
			{"id":"o1","createdAt":"2024-02-10T12:00:00Z","totalAmount":"150.50","couponCode":"SAVE10","customerId":"c1"},
			{"id":"o2","createdAt":"2024-02-11","totalAmount":"80","coupon":{"code":"WELCOME"},"customerId":"c2",
			 "items":[{"productId":"p1","productName":"Mug","quantity":2,"unitPrice":"40"}]}
		]}`))
	})

	orders, err := c.GetOrders(context.Background(), entity.DateRange{
		From: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.NotEmpty(t, gotRequestID)

	assert.Equal(t, "SAVE10", orders[0].CouponCode)
	assert.Equal(t, "150.5", orders[0].TotalAmount.String())
	assert.Equal(t, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), orders[0].CreatedAt)

	// nested coupon object is the fallback for a missing code field
	assert.Equal(t, "WELCOME", orders[1].CouponCode)
	assert.Equal(t, time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC), orders[1].CreatedAt)
	require.Len(t, orders[1].Items, 1)
	assert.Equal(t, "Mug", orders[1].Items[0].ProductName)
}

func TestGetPaymentsResolvesSynonymFields(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments", r.URL.Path)
		w.Write([]byte(`{"payments":[
			{"id":"p1","amount":"100","method":"card","status":"completed"},
			{"id":"p2","amount":"50","paymentMethod":"paypal","paymentStatus":"paid"},
			{"id":"p3","amount":"25","status":"failed"}
		]}`))
	})

	payments, err := c.GetPayments(context.Background(), entity.DateRange{})
	require.NoError(t, err)
	require.Len(t, payments, 3)

	assert.Equal(t, "card", payments[0].Method)
	assert.True(t, payments[0].Succeeded)

	assert.Equal(t, "paypal", payments[1].Method)
	assert.True(t, payments[1].Succeeded)

	assert.Equal(t, "Unknown", payments[2].Method)
	assert.False(t, payments[2].Succeeded)
}

func TestGetCouponsAndCustomers(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/coupons":
			w.Write([]byte(`{"coupons":[{"code":"SAVE10","discount":"10","active":true}]}`))
		case "/customers":
			w.Write([]byte(`{"customers":[{"id":"c1","firstName":"Jane","lastName":"Doe","email":"jane@example.com"}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	coupons, err := c.GetCoupons(context.Background())
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "SAVE10", coupons[0].Code)
	assert.True(t, coupons[0].Active)

	customers, err := c.GetCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Jane", customers[0].FirstName)
}

func TestGetStock(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stock", r.URL.Path)
		w.Write([]byte(`{"items":[{"productId":"p1","productName":"Mug","stockLevel":12,"unitPrice":"9.99"}]}`))
	})

	items, err := c.GetStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 12, items[0].StockLevel)
	assert.Equal(t, "9.99", items[0].UnitPrice.String())
}

func TestErrorStatusSurfacesAsError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	})

	_, err := c.GetOrders(context.Background(), entity.DateRange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestMalformedBodySurfacesAsError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"payments":`))
	})

	_, err := c.GetPayments(context.Background(), entity.DateRange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
