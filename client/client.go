package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cadburyboy21/billing-system-frontend/models"
)

// IdempotencyHeader carries the checkout attempt token so the remote service
// can drop duplicate order submissions.
const IdempotencyHeader = "Idempotency-Key"

const (
	readTimeout  = 5 * time.Second
	orderTimeout = 10 * time.Second
)

// Client is a typed HTTP client for the remote menu/order service
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given API base URL, e.g. http://localhost:5000/api
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// do issues one JSON request with a deadline layered on the caller's context,
// so an abandoned page load cancels its upstream call.
func (c *Client) do(ctx context.Context, method, path string, timeout time.Duration, header http.Header, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &apiError{kind: ErrUnavailable, msg: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// The service reports failures as {"error": "..."}.
		var remote struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &remote) != nil || remote.Error == "" {
			remote.Error = strings.TrimSpace(string(data))
		}
		return errorFromStatus(resp.StatusCode, remote.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// ListMenu retrieves all menu items
func (c *Client) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.do(ctx, http.MethodGet, "/menu", readTimeout, nil, nil, &items)
	return items, err
}

// CreateMenuItem adds a new menu item to the catalog
func (c *Client) CreateMenuItem(ctx context.Context, input models.MenuItemInput) (models.MenuItem, error) {
	var item models.MenuItem
	err := c.do(ctx, http.MethodPost, "/menu", readTimeout, nil, input, &item)
	return item, err
}

// UpdateMenuItem replaces a menu item's fields
func (c *Client) UpdateMenuItem(ctx context.Context, id string, input models.MenuItemInput) (models.MenuItem, error) {
	var item models.MenuItem
	err := c.do(ctx, http.MethodPut, "/menu/"+url.PathEscape(id), readTimeout, nil, input, &item)
	return item, err
}

// DeleteMenuItem removes a menu item from the catalog
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(id), readTimeout, nil, nil, nil)
}

// CreateOrder submits a checkout payload and returns the priced order with its
// server-assigned identity. The idempotency key travels both in the payload and
// as a header.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	header := http.Header{}
	if req.IdempotencyKey != "" {
		header.Set(IdempotencyHeader, req.IdempotencyKey)
	}
	var order models.Order
	err := c.do(ctx, http.MethodPost, "/orders", orderTimeout, header, req, &order)
	return order, err
}

// orderQRResponse is the wire shape of GET /orders/{id}/qr. The server may
// include a pre-rendered QR payload; the bill derives its own UPI link instead,
// so only the order is consumed.
type orderQRResponse struct {
	Order  models.Order `json:"order"`
	QRCode string       `json:"qrCode,omitempty"`
}

// GetOrder fetches a confirmed order by its identity
func (c *Client) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var resp orderQRResponse
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id)+"/qr", readTimeout, nil, nil, &resp)
	return resp.Order, err
}

// GetSalesReport fetches the aggregated report for a YYYY-MM-DD date
func (c *Client) GetSalesReport(ctx context.Context, date string) (models.SalesReport, error) {
	var report models.SalesReport
	err := c.do(ctx, http.MethodGet, "/orders/sales-report?date="+url.QueryEscape(date), readTimeout, nil, nil, &report)
	if err == nil && report.Date == "" {
		report.Date = date
	}
	return report, err
}
