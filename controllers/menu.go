package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/cadburyboy21/billing-system-frontend/cart"
	"github.com/cadburyboy21/billing-system-frontend/client"
	"github.com/cadburyboy21/billing-system-frontend/middleware"
	"github.com/cadburyboy21/billing-system-frontend/models"
	"github.com/cadburyboy21/billing-system-frontend/templates"
)

// MenuController handles the menu page and menu management requests
type MenuController struct {
	API   *client.Client
	Carts *cart.SessionStore
}

// NewMenuController creates a new MenuController
func NewMenuController(api *client.Client, carts *cart.SessionStore) *MenuController {
	return &MenuController{API: api, Carts: carts}
}

type menuPage struct {
	Items []models.MenuItem
	Cart  cart.View
	Error string
}

// ShowMenu renders the menu grid with the session's cart panel
func (mc *MenuController) ShowMenu(w http.ResponseWriter, r *http.Request) {
	page := menuPage{
		Cart:  mc.Carts.Snapshot(middleware.SessionID(r)),
		Error: r.URL.Query().Get("error"),
	}

	items, err := mc.API.ListMenu(r.Context())
	if err != nil {
		log.Printf("Failed to load menu: %v", err)
		page.Error = "Failed to load menu items"
	} else {
		page.Items = items
	}

	templates.Render(w, "menu.html", page)
}

type managementPage struct {
	Items   []models.MenuItem
	Editing *models.MenuItem
	Error   string
}

// ShowManagement renders the menu management list and form. The ?edit query
// parameter selects an item for the edit form.
func (mc *MenuController) ShowManagement(w http.ResponseWriter, r *http.Request) {
	page := managementPage{Error: r.URL.Query().Get("error")}

	items, err := mc.API.ListMenu(r.Context())
	if err != nil {
		log.Printf("Failed to load menu: %v", err)
		page.Error = "Failed to load menu items"
	} else {
		page.Items = items
	}

	if editID := r.URL.Query().Get("edit"); editID != "" {
		for i := range page.Items {
			if page.Items[i].ID == editID {
				page.Editing = &page.Items[i]
				break
			}
		}
	}

	templates.Render(w, "management.html", page)
}

// SaveMenuItem creates or updates a menu item from the management form. Local
// validation runs before any network call: name and image are required and the
// price must parse as a non-negative decimal.
func (mc *MenuController) SaveMenuItem(w http.ResponseWriter, r *http.Request) {
	input := models.MenuItemInput{
		Name:        r.FormValue("name"),
		Image:       r.FormValue("image"),
		Description: r.FormValue("description"),
	}
	if input.Name == "" || input.Image == "" {
		mc.managementError(w, r, "Name and image URL are required")
		return
	}
	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil || price.IsNegative() {
		mc.managementError(w, r, "Price must be a non-negative number")
		return
	}
	input.Price = price

	id := r.FormValue("id")
	if id == "" {
		_, err = mc.API.CreateMenuItem(r.Context(), input)
	} else {
		_, err = mc.API.UpdateMenuItem(r.Context(), id, input)
	}
	if err != nil {
		log.Printf("Failed to save menu item: %v", err)
		mc.managementError(w, r, saveErrorMessage(err))
		return
	}

	http.Redirect(w, r, "/menu-management", http.StatusSeeOther)
}

// DeleteMenuItem removes a menu item from the catalog
func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := mc.API.DeleteMenuItem(r.Context(), params["id"]); err != nil {
		log.Printf("Failed to delete menu item: %v", err)
		mc.managementError(w, r, "Failed to delete menu item")
		return
	}
	http.Redirect(w, r, "/menu-management", http.StatusSeeOther)
}

func (mc *MenuController) managementError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/menu-management?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrValidation):
		return "The menu service rejected the item"
	case errors.Is(err, client.ErrNotFound):
		return "Menu item not found"
	default:
		return "Failed to save menu item"
	}
}
