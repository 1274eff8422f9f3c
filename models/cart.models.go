package models

import (
	"github.com/shopspring/decimal"
)

// CartLine represents one menu item's quantity within the in-progress selection.
// Name, price and image are snapshots taken when the item was first added, so the
// receipt reflects what the customer saw even if the catalog changes mid-session.
type CartLine struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Image      string          `json:"image"`
}

// Subtotal returns price times quantity for the line
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
