package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cadburyboy21/billing-system-frontend/cart"
	"github.com/cadburyboy21/billing-system-frontend/middleware"
	"github.com/cadburyboy21/billing-system-frontend/models"
)

// CartController handles cart-related requests
type CartController struct {
	Carts *cart.SessionStore
}

// NewCartController creates a new CartController
func NewCartController(carts *cart.SessionStore) *CartController {
	return &CartController{Carts: carts}
}

// AddToCart puts one unit of a menu item into the session's cart. The menu view
// posts the item's name, price and image alongside its id; those are the
// snapshot the customer saw, and they stick to the line for the whole session.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	if id == "" {
		http.Error(w, "Missing menu item id", http.StatusBadRequest)
		return
	}
	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil || price.IsNegative() {
		http.Error(w, "Invalid price", http.StatusBadRequest)
		return
	}

	cc.Carts.Add(middleware.SessionID(r), models.MenuItem{
		ID:    id,
		Name:  r.FormValue("name"),
		Price: price,
		Image: r.FormValue("image"),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UpdateQuantity sets a cart line's quantity; zero or less removes the line
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("menuItemId")
	if id == "" {
		http.Error(w, "Missing menu item id", http.StatusBadRequest)
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	cc.Carts.UpdateQuantity(middleware.SessionID(r), id, quantity)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RemoveFromCart deletes a line from the session's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("menuItemId")
	if id == "" {
		http.Error(w, "Missing menu item id", http.StatusBadRequest)
		return
	}

	cc.Carts.Remove(middleware.SessionID(r), id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ClearCart empties the session's cart and returns to the menu. The billing
// page's "back to menu" button posts here too; that is the moment the cart
// stops being recoverable after a checkout.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cc.Carts.Clear(middleware.SessionID(r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
