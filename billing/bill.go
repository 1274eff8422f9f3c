package billing

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/cadburyboy21/billing-system-frontend/models"
)

// BillPDF renders a printable receipt for a confirmed order: header, item table,
// total and the UPI QR code. Amounts omit the rupee sign since the core PDF
// fonts cannot encode it.
func BillPDF(p Payee, order models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Restaurant Billing System", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Order ID: "+order.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date: "+order.OrderDate.Format("2006-01-02 15:04:05"))
	pdf.Ln(10)

	widths := []float64{80, 25, 35, 35}
	headers := []string{"Item", "Qty", "Price", "Subtotal"}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range order.Items {
		cells := []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			item.Price.StringFixed(2),
			item.Subtotal.StringFixed(2),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 8, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total Amount: "+order.Total.StringFixed(2))
	pdf.Ln(12)

	png, err := QRCodePNG(UPILink(p, order), 512)
	if err != nil {
		return nil, err
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("upi-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("upi-qr", 75, pdf.GetY(), 60, 60, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 64)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Scan to pay via UPI ("+p.VPA+")", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Thank you for your order!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
