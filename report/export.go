package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/cadburyboy21/billing-system-frontend/models"
)

const sheetName = "Sales Report"

// Excel renders a daily sales report as an .xlsx workbook: a title row, one row
// per order with its items joined as "name (qty)", and a summary block.
func Excel(rep models.SalesReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Sales Report", rep.Date},
		{},
		{"Order ID", "Date", "Items", "Total"},
	}
	for _, order := range rep.Orders {
		names := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			names = append(names, fmt.Sprintf("%s (%d)", item.Name, item.Quantity))
		}
		rows = append(rows, []any{
			order.ID,
			order.OrderDate.Format("2006-01-02 15:04:05"),
			strings.Join(names, ", "),
			"₹" + order.Total.StringFixed(2),
		})
	}
	rows = append(rows,
		[]any{},
		[]any{"Summary"},
		[]any{"Total Orders", rep.Summary.TotalOrders},
		[]any{"Total Revenue", "₹" + rep.Summary.TotalRevenue.StringFixed(2)},
		[]any{"Total Items Sold", rep.Summary.TotalItems},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PDF renders a daily sales report as an A4 PDF: a title, a striped per-order
// table (short id, time, item count, total) and summary lines. Amounts are
// written without the rupee sign since the core PDF fonts cannot encode it.
func PDF(rep models.SalesReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Daily Sales Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Date: "+rep.Date)
	pdf.Ln(12)

	widths := []float64{60, 40, 30, 40}
	headers := []string{"Order ID", "Time", "Items", "Total"}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, order := range rep.Orders {
		id := order.ID
		if len(id) > 8 {
			id = id[:8]
		}
		cells := []string{
			id,
			order.OrderDate.Format("15:04:05"),
			fmt.Sprintf("%d", len(order.Items)),
			order.Total.StringFixed(2),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 8, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total Orders: %d", rep.Summary.TotalOrders))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Total Revenue: "+rep.Summary.TotalRevenue.StringFixed(2))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total Items Sold: %d", rep.Summary.TotalItems))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
