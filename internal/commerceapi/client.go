package commerceapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Client talks to the commerce data API. Retries, backoff and timeouts live
// here, not in the aggregation core.
type Client struct {
	cli *resty.Client
}

func New(c *Config) *Client {
	cli := resty.New()
	cli.SetBaseURL(c.BaseURL)
	if c.APIKey != "" {
		cli.SetAuthToken(c.APIKey)
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	cli.SetTimeout(timeout)
	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})
	return &Client{cli: cli}
}

func (c *Client) GetOrders(ctx context.Context, rng entity.DateRange) ([]entity.Order, error) {
	var res struct {
		Orders []orderWire `json:"orders"`
	}
	if err := c.get(ctx, "orders", rangeParams(rng), &res); err != nil {
		return nil, fmt.Errorf("could not get orders: %w", err)
	}
	orders := make([]entity.Order, 0, len(res.Orders))
	for _, w := range res.Orders {
		orders = append(orders, w.toEntity())
	}
	return orders, nil
}

func (c *Client) GetPayments(ctx context.Context, rng entity.DateRange) ([]entity.Payment, error) {
	var res struct {
		Payments []paymentWire `json:"payments"`
	}
	if err := c.get(ctx, "payments", rangeParams(rng), &res); err != nil {
		return nil, fmt.Errorf("could not get payments: %w", err)
	}
	payments := make([]entity.Payment, 0, len(res.Payments))
	for _, w := range res.Payments {
		payments = append(payments, w.toEntity())
	}
	return payments, nil
}

func (c *Client) GetCoupons(ctx context.Context) ([]entity.Coupon, error) {
	var res struct {
		Coupons []couponWire `json:"coupons"`
	}
	if err := c.get(ctx, "coupons", nil, &res); err != nil {
		return nil, fmt.Errorf("could not get coupons: %w", err)
	}
	coupons := make([]entity.Coupon, 0, len(res.Coupons))
	for _, w := range res.Coupons {
		coupons = append(coupons, w.toEntity())
	}
	return coupons, nil
}

func (c *Client) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	var res struct {
		Customers []customerWire `json:"customers"`
	}
	if err := c.get(ctx, "customers", nil, &res); err != nil {
		return nil, fmt.Errorf("could not get customers: %w", err)
	}
	customers := make([]entity.Customer, 0, len(res.Customers))
	for _, w := range res.Customers {
		customers = append(customers, w.toEntity())
	}
	return customers, nil
}

func (c *Client) GetStock(ctx context.Context) ([]entity.StockItem, error) {
	var res struct {
		Items []stockWire `json:"items"`
	}
	if err := c.get(ctx, "stock", nil, &res); err != nil {
		return nil, fmt.Errorf("could not get stock: %w", err)
	}
	items := make([]entity.StockItem, 0, len(res.Items))
	for _, w := range res.Items {
		items = append(items, w.toEntity())
	}
	return items, nil
}

func rangeParams(rng entity.DateRange) map[string]string {
	return map[string]string{
		"from": rng.From.Format("2006-01-02"),
		"to":   rng.To.Format("2006-01-02"),
	}
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.cli.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParams(params)
	}
	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("commerce api returned %s: %s", resp.Status(), resp.String())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("could not unmarshal response: %w : body: %v", err, resp.String())
	}
	return nil
}
