package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cadburyboy21/billing-system-frontend/models"
)

func TestListMenu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/menu" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `[
			{"_id":"a","name":"Masala Dosa","price":80,"image":"https://img/a"},
			{"_id":"b","name":"Filter Coffee","price":30.5,"image":"https://img/b","description":"Strong"}
		]`)
	}))
	defer srv.Close()

	items, err := New(srv.URL+"/api").ListMenu(context.Background())
	if err != nil {
		t.Fatalf("ListMenu: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Name != "Filter Coffee" || !items[1].Price.Equal(decimal.RequireFromString("30.5")) {
		t.Errorf("unexpected item: %+v", items[1])
	}
}

func TestCreateOrder(t *testing.T) {
	var gotKey string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotKey = r.Header.Get(IdempotencyHeader)
		gotBody, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, `{"_id":"order123","total":200,"items":[
			{"name":"Masala Dosa","price":100,"quantity":2,"subtotal":200}
		]}`)
	}))
	defer srv.Close()

	req := models.OrderRequest{
		Items:          []models.OrderRequestItem{{MenuItemID: "A", Quantity: 2}},
		IdempotencyKey: "attempt-1",
	}
	order, err := New(srv.URL+"/api").CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.ID != "order123" {
		t.Errorf("expected server-assigned id order123, got %q", order.ID)
	}
	if !order.Total.Equal(decimal.RequireFromString("200")) {
		t.Errorf("expected total 200, got %s", order.Total)
	}
	if gotKey != "attempt-1" {
		t.Errorf("expected Idempotency-Key header attempt-1, got %q", gotKey)
	}

	var sent models.OrderRequest
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("decoding sent body: %v", err)
	}
	if len(sent.Items) != 1 || sent.Items[0].MenuItemID != "A" || sent.Items[0].Quantity != 2 {
		t.Errorf("unexpected payload items: %+v", sent.Items)
	}
	// The server is the price authority; the payload must not carry prices.
	if strings.Contains(string(gotBody), "price") {
		t.Errorf("order payload must not contain prices: %s", gotBody)
	}
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/order123/qr" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// The server's pre-rendered QR payload is present but unused.
		fmt.Fprint(w, `{"order":{"_id":"order123","total":199.5,"items":[]},"qrCode":"data:image/png;base64,xyz"}`)
	}))
	defer srv.Close()

	order, err := New(srv.URL+"/api").GetOrder(context.Background(), "order123")
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if order.ID != "order123" || !order.Total.Equal(decimal.RequireFromString("199.5")) {
		t.Errorf("unexpected order: %+v", order)
	}
}

func TestGetSalesReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/sales-report" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2026-09-01" {
			t.Errorf("expected date query 2026-09-01, got %q", got)
		}
		fmt.Fprint(w, `{
			"summary":{"totalOrders":2,"totalRevenue":430.5,"totalItems":7,"itemSales":[{"name":"Masala Dosa","quantity":4,"revenue":320}]},
			"orders":[{"_id":"o1","total":200,"items":[]},{"_id":"o2","total":230.5,"items":[]}]
		}`)
	}))
	defer srv.Close()

	rep, err := New(srv.URL+"/api").GetSalesReport(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("GetSalesReport: %v", err)
	}
	if rep.Date != "2026-09-01" {
		t.Errorf("expected date filled in, got %q", rep.Date)
	}
	if rep.Summary.TotalOrders != 2 || len(rep.Orders) != 2 {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrUnavailable},
		{http.StatusServiceUnavailable, ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"error":"it broke"}`)
			}))
			defer srv.Close()

			_, err := New(srv.URL + "/api").ListMenu(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !strings.Contains(err.Error(), "it broke") {
				t.Errorf("expected remote message in error, got %v", err)
			}
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL + "/api").ListMenu(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestCallerContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL + "/api").ListMenu(ctx)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable on cancelled context, got %v", err)
	}
}
