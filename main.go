// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/cadburyboy21/billing-system-frontend/billing"
	"github.com/cadburyboy21/billing-system-frontend/cart"
	"github.com/cadburyboy21/billing-system-frontend/client"
	"github.com/cadburyboy21/billing-system-frontend/controllers"
	"github.com/cadburyboy21/billing-system-frontend/middleware"
	"github.com/cadburyboy21/billing-system-frontend/routes"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Remote service the frontend consumes
	apiClient := client.New(getenv("API_BASE_URL", "http://localhost:5000/api"))

	// Who receives UPI payments on the printed bills
	payee := billing.Payee{
		VPA:      getenv("UPI_PAYEE_ID", "7397508715@ptyes"),
		Name:     getenv("UPI_PAYEE_NAME", "Restaurant Billing System"),
		Currency: getenv("UPI_CURRENCY", "INR"),
	}

	// Session carts live in memory for the life of the process
	carts := cart.NewSessionStore()

	// Initialize controllers
	menuController := controllers.NewMenuController(apiClient, carts)
	cartController := controllers.NewCartController(carts)
	orderController := controllers.NewOrderController(apiClient, carts, payee)
	reportController := controllers.NewReportController(apiClient)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, menuController, cartController, orderController, reportController)

	// Apply middleware: session cookie, request log, metrics
	metrics := middleware.NewMetrics()
	router.Use(middleware.SessionMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(metrics.Middleware)

	// Start the server
	port := getenv("PORT", "3000")
	fmt.Printf("POS frontend is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
