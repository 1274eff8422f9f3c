package templates

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/shopspring/decimal"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"add":   func(a, b int) int { return a + b },
}

var pages = template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))

// Render writes the named page to the response. Template failures are logged
// and reported as a plain 500 so the session stays usable.
func Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Failed to render %s: %v", name, err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}
