package billing

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/cadburyboy21/billing-system-frontend/models"
)

// Payee identifies who receives UPI payments for the restaurant
type Payee struct {
	VPA      string // virtual payment address, e.g. 7397508715@ptyes
	Name     string
	Currency string
}

// UPILink builds the deep link encoded into the bill's QR code. The format is
// fixed so the same order always yields the same link: the amount carries
// exactly two decimals and the note carries the first 8 characters of the
// order id.
func UPILink(p Payee, order models.Order) string {
	note := order.ID
	if len(note) > 8 {
		note = note[:8]
	}
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s&tn=Order%s",
		p.VPA, escapeName(p.Name), order.Total.StringFixed(2), p.Currency, note)
}

// escapeName percent-encodes the payee name; UPI apps expect %20 for spaces
func escapeName(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// QRCodePNG renders a payment link as a scannable PNG of the given pixel size
func QRCodePNG(link string, size int) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, size)
}
