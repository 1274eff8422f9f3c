package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cadburyboy21/billing-system-frontend/billing"
	"github.com/cadburyboy21/billing-system-frontend/cart"
	"github.com/cadburyboy21/billing-system-frontend/client"
	"github.com/cadburyboy21/billing-system-frontend/middleware"
	"github.com/cadburyboy21/billing-system-frontend/models"
	"github.com/cadburyboy21/billing-system-frontend/templates"
)

// OrderController handles checkout and billing requests
type OrderController struct {
	API   *client.Client
	Carts *cart.SessionStore
	Payee billing.Payee
}

// NewOrderController creates a new OrderController
func NewOrderController(api *client.Client, carts *cart.SessionStore, payee billing.Payee) *OrderController {
	return &OrderController{API: api, Carts: carts, Payee: payee}
}

// Checkout hands the session's cart to the order service and redirects to the
// bill. The cart is read once into an OrderRequest before submission; it is
// never cleared here, so the customer can navigate back to it until the billing
// page's "back to menu" clears it explicitly.
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	items := oc.Carts.OrderItems(sessionID)
	if len(items) == 0 {
		// Local precondition: nothing goes upstream for an empty cart.
		oc.checkoutError(w, r, "Cart is empty")
		return
	}

	if !oc.Carts.BeginCheckout(sessionID) {
		oc.checkoutError(w, r, "Checkout already in progress")
		return
	}
	defer oc.Carts.EndCheckout(sessionID)

	order, err := oc.API.CreateOrder(r.Context(), models.OrderRequest{
		Items:          items,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		log.Printf("Checkout failed for session %s: %v", sessionID, err)
		oc.checkoutError(w, r, "Failed to create order. Please try again.")
		return
	}

	http.Redirect(w, r, "/billing/"+url.PathEscape(order.ID), http.StatusSeeOther)
}

func (oc *OrderController) checkoutError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

type billingPage struct {
	Order    models.Order
	Date     string
	PayeeVPA string
}

// ShowBilling renders the receipt for a confirmed order
func (oc *OrderController) ShowBilling(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	order, err := oc.API.GetOrder(r.Context(), params["id"])
	if err != nil {
		oc.orderError(w, err)
		return
	}

	templates.Render(w, "billing.html", billingPage{
		Order:    order,
		Date:     order.OrderDate.Format("2006-01-02 15:04:05"),
		PayeeVPA: oc.Payee.VPA,
	})
}

// QRImage serves the scannable UPI payment code for an order. The link is
// derived locally from the order total and identity, never taken from the
// server, so the QR payload is always a valid UPI deep link.
func (oc *OrderController) QRImage(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	order, err := oc.API.GetOrder(r.Context(), params["id"])
	if err != nil {
		oc.orderError(w, err)
		return
	}

	png, err := billing.QRCodePNG(billing.UPILink(oc.Payee, order), 512)
	if err != nil {
		log.Printf("Failed to render QR for order %s: %v", order.ID, err)
		http.Error(w, "Error generating QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// DownloadBill serves the receipt as a PDF attachment
func (oc *OrderController) DownloadBill(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	order, err := oc.API.GetOrder(r.Context(), params["id"])
	if err != nil {
		oc.orderError(w, err)
		return
	}

	pdf, err := billing.BillPDF(oc.Payee, order)
	if err != nil {
		log.Printf("Failed to render bill PDF for order %s: %v", order.ID, err)
		http.Error(w, "Error generating PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="bill-`+order.ID+`.pdf"`)
	w.Write(pdf)
}

func (oc *OrderController) orderError(w http.ResponseWriter, err error) {
	log.Printf("Failed to fetch order: %v", err)
	if errors.Is(err, client.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	http.Error(w, "Failed to load order details", http.StatusBadGateway)
}
