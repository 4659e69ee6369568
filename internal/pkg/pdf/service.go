// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"
	"github.com/your-org/shopfront/internal/config"
	"github.com/your-org/shopfront/internal/domain/cart"
	"github.com/your-org/shopfront/internal/domain/order"
)

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money":   formatMoney,
	"variant": variantLabel,
}).Parse(invoiceTemplate))

// Service handles PDF generation
type Service struct {
	company CompanyInfo
	now     func() time.Time
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		company: CompanyInfo{
			Name:    cfg.App.CompanyName,
			Address: cfg.App.CompanyAddress,
			Phone:   cfg.App.CompanyPhone,
			Email:   cfg.App.CompanyEmail,
			Website: cfg.App.CompanyWebsite,
		},
		now: time.Now,
	}
}

// GenerateInvoice generates a PDF invoice for an order
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.GenerateHTML(o)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	// Convert HTML to PDF
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// GenerateHTML renders the invoice page for an order
func (s *Service) GenerateHTML(o *order.Order) (string, error) {
	data := InvoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%s", o.ID),
		InvoiceDate:   s.now().Format("January 2, 2006"),
		Order:         o,
		Company:       s.company,
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber string       `json:"invoice_number"`
	InvoiceDate   string       `json:"invoice_date"`
	Order         *order.Order `json:"order"`
	Company       CompanyInfo  `json:"company"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func variantLabel(item cart.CartItem) string {
	size, hasSize := item.SelectedSize.Value()
	color, hasColor := item.SelectedColor.Value()
	switch {
	case hasSize && hasColor:
		return fmt.Sprintf("Size %s, %s", size, color)
	case hasSize:
		return "Size " + size
	case hasColor:
		return color
	}
	return ""
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.InvoiceNumber}}</title>
<style>
  * { box-sizing: border-box; }
  body { font: 13px/1.5 Helvetica, Arial, sans-serif; color: #1f2933; margin: 32px; }
  header { overflow: hidden; padding-bottom: 16px; border-bottom: 3px solid #111827; }
  header .brand { float: left; }
  header .meta { float: right; text-align: right; }
  h1 { margin: 0 0 4px; font-size: 22px; letter-spacing: 1px; }
  h2 { margin: 24px 0 6px; font-size: 12px; text-transform: uppercase; color: #6b7280; }
  .muted { color: #6b7280; }
  .status { padding: 2px 10px; border: 1px solid #111827; border-radius: 10px; font-size: 11px; }
  table.lines { width: 100%; margin-top: 24px; border-collapse: collapse; }
  table.lines th { text-align: left; font-size: 11px; text-transform: uppercase; border-bottom: 1px solid #9ca3af; padding: 6px 4px; }
  table.lines td { padding: 8px 4px; border-bottom: 1px solid #e5e7eb; vertical-align: top; }
  table.lines .r { text-align: right; }
  table.summary { margin: 16px 0 0 auto; width: 260px; }
  table.summary td { padding: 4px; }
  table.summary td + td { text-align: right; }
  table.summary tr.grand td { font-size: 16px; font-weight: bold; border-top: 2px solid #111827; }
  footer { margin-top: 48px; font-size: 11px; text-align: center; color: #6b7280; }
</style>
</head>
<body>
<header>
  <div class="brand">
    <h1>{{.Company.Name}}</h1>
    <div class="muted">{{.Company.Address}}</div>
    <div class="muted">{{.Company.Email}} · {{.Company.Phone}}</div>
  </div>
  <div class="meta">
    <div><strong>{{.InvoiceNumber}}</strong></div>
    <div>Issued {{.InvoiceDate}}</div>
    <div>Order {{.Order.ID}} placed {{.Order.CreatedAt.Format "January 2, 2006"}}</div>
    <div><span class="status">{{.Order.Status}}</span></div>
  </div>
</header>

<h2>Ship to</h2>
<div><strong>{{.Order.CustomerName}}</strong></div>
<div>{{.Order.ShippingAddress}}</div>
<div class="muted">{{.Order.CustomerEmail}}</div>

<table class="lines">
  <tr><th>Item</th><th>SKU</th><th class="r">Qty</th><th class="r">Unit</th><th class="r">Amount</th></tr>
  {{range .Order.Items}}
  <tr>
    <td>{{.Product.Name}}{{with variant .}}<br><span class="muted">{{.}}</span>{{end}}</td>
    <td>{{.Product.SKU}}</td>
    <td class="r">{{.Quantity}}</td>
    <td class="r">{{money .Product.Price}}</td>
    <td class="r">{{money .LineTotal}}</td>
  </tr>
  {{end}}
</table>

<table class="summary">
  <tr><td>Subtotal:</td><td>{{money .Order.Subtotal}}</td></tr>
  {{if .Order.Discount.IsPositive}}<tr><td>Discount:</td><td>-{{money .Order.Discount}}</td></tr>{{end}}
  <tr><td>Shipping:</td><td>{{if .Order.Shipping.IsZero}}Free{{else}}{{money .Order.Shipping}}{{end}}</td></tr>
  <tr class="grand"><td>Total:</td><td>{{money .Order.Total}}</td></tr>
</table>

<footer>
  Thank you for shopping with {{.Company.Name}}. Questions about this receipt? Write to {{.Company.Email}}.
  <div>{{.Company.Website}}</div>
</footer>
</body>
</html>
`
