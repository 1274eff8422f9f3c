// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/cadburyboy21/billing-system-frontend/controllers"
	"github.com/cadburyboy21/billing-system-frontend/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, menuController *controllers.MenuController, cartController *controllers.CartController, orderController *controllers.OrderController, reportController *controllers.ReportController) {
	// Menu + cart panel
	router.HandleFunc("/", menuController.ShowMenu).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart/add", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/update", cartController.UpdateQuantity).Methods("POST")
	router.HandleFunc("/cart/remove", cartController.RemoveFromCart).Methods("POST")
	router.HandleFunc("/cart/clear", cartController.ClearCart).Methods("POST")

	// Checkout and billing routes
	router.HandleFunc("/checkout", orderController.Checkout).Methods("POST")
	router.HandleFunc("/billing/{id}", orderController.ShowBilling).Methods("GET")
	router.HandleFunc("/billing/{id}/qr.png", orderController.QRImage).Methods("GET")
	router.HandleFunc("/billing/{id}/bill.pdf", orderController.DownloadBill).Methods("GET")

	// Menu management routes
	router.HandleFunc("/menu-management", menuController.ShowManagement).Methods("GET")
	router.HandleFunc("/menu-management/save", menuController.SaveMenuItem).Methods("POST")
	router.HandleFunc("/menu-management/delete/{id}", menuController.DeleteMenuItem).Methods("POST")

	// Sales report routes
	router.HandleFunc("/sales-report", reportController.ShowReport).Methods("GET")
	router.HandleFunc("/sales-report/export.xlsx", reportController.ExportExcel).Methods("GET")
	router.HandleFunc("/sales-report/export.pdf", reportController.ExportPDF).Methods("GET")

	// Observability
	router.Handle("/metrics", middleware.MetricsHandler()).Methods("GET")
}
