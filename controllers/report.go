package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/cadburyboy21/billing-system-frontend/client"
	"github.com/cadburyboy21/billing-system-frontend/models"
	"github.com/cadburyboy21/billing-system-frontend/report"
	"github.com/cadburyboy21/billing-system-frontend/templates"
)

// ReportController handles sales report requests
type ReportController struct {
	API *client.Client
}

// NewReportController creates a new ReportController
func NewReportController(api *client.Client) *ReportController {
	return &ReportController{API: api}
}

type reportPage struct {
	Report models.SalesReport
	Date   string
	Error  string
}

// reportDate returns the requested YYYY-MM-DD date, defaulting to today
func reportDate(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return time.Now().Format("2006-01-02")
}

// ShowReport renders the daily sales report page
func (rc *ReportController) ShowReport(w http.ResponseWriter, r *http.Request) {
	date := reportDate(r)
	page := reportPage{Date: date}

	rep, err := rc.API.GetSalesReport(r.Context(), date)
	if err != nil {
		log.Printf("Failed to load sales report for %s: %v", date, err)
		page.Error = "Failed to load sales report"
	} else {
		page.Report = rep
	}

	templates.Render(w, "report.html", page)
}

// ExportExcel serves the daily report as an .xlsx download
func (rc *ReportController) ExportExcel(w http.ResponseWriter, r *http.Request) {
	date := reportDate(r)
	rep, err := rc.API.GetSalesReport(r.Context(), date)
	if err != nil {
		log.Printf("Failed to load sales report for %s: %v", date, err)
		http.Error(w, "Failed to load sales report", http.StatusBadGateway)
		return
	}

	data, err := report.Excel(rep)
	if err != nil {
		log.Printf("Failed to render Excel report for %s: %v", date, err)
		http.Error(w, "Error generating spreadsheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sales-report-`+date+`.xlsx"`)
	w.Write(data)
}

// ExportPDF serves the daily report as a PDF download
func (rc *ReportController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	date := reportDate(r)
	rep, err := rc.API.GetSalesReport(r.Context(), date)
	if err != nil {
		log.Printf("Failed to load sales report for %s: %v", date, err)
		http.Error(w, "Failed to load sales report", http.StatusBadGateway)
		return
	}

	data, err := report.PDF(rep)
	if err != nil {
		log.Printf("Failed to render PDF report for %s: %v", date, err)
		http.Error(w, "Error generating PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="sales-report-`+date+`.pdf"`)
	w.Write(data)
}
