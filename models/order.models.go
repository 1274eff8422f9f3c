package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequestItem is one (menu item, quantity) pair of an order request
type OrderRequestItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// OrderRequest is the payload sent to create an order. It carries identities and
// quantities only; the server is the price authority. The idempotency key lets
// the server drop duplicate submissions of the same checkout attempt.
type OrderRequest struct {
	Items          []OrderRequestItem `json:"items"`
	IdempotencyKey string             `json:"idempotencyKey,omitempty"`
}

// OrderItem is a fulfilled line of a confirmed order
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Order represents the server-confirmed, priced record of a completed checkout
type Order struct {
	ID        string          `json:"_id"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	OrderDate time.Time       `json:"orderDate"`
}
