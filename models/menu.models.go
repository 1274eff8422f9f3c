package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The remote service speaks plain JSON numbers for money.
	decimal.MarshalJSONWithoutQuotes = true
}

// MenuItem represents a purchasable catalog entry owned by the remote menu service
type MenuItem struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
}

// MenuItemInput carries the fields accepted when creating or updating a menu item
type MenuItemInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
}
