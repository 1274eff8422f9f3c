package models

import (
	"github.com/shopspring/decimal"
)

// ItemSale is the per-item aggregate of a daily sales report
type ItemSale struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ReportSummary holds the precomputed totals of a daily sales report
type ReportSummary struct {
	TotalOrders  int             `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalItems   int             `json:"totalItems"`
	ItemSales    []ItemSale      `json:"itemSales"`
}

// SalesReport is the aggregated report for one day, computed by the remote service
type SalesReport struct {
	Date    string        `json:"date"`
	Summary ReportSummary `json:"summary"`
	Orders  []Order       `json:"orders"`
}
