package services

import (
	"bytes"
	"text/template"

	"luxelane/models"

	"github.com/shopspring/decimal"
)

const invoiceTemplate = `LuxeLane Invoice
================

Order ID: {{.ID}}
Date:     {{.Date}}

{{printf "%-40s %5s %12s %12s" "Item" "Qty" "Price" "Total"}}
----------------------------------------------------------------------------
{{range .Lines}}{{printf "%-40s %5d %12s %12s" .Name .Quantity .Price .Total}}
{{end}}----------------------------------------------------------------------------
{{printf "%59s %12s" "Subtotal:" .Subtotal}}
{{printf "%59s %12s" "Tax (10%):" .Tax}}
{{printf "%59s %12s" "Total:" .Total}}

Thank you for your purchase!
`

type invoiceLine struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

type invoiceData struct {
	ID       string
	Date     string
	Lines    []invoiceLine
	Subtotal string
	Tax      string
	Total    string
}

// InvoiceService renders a finalized order into a downloadable plain-text
// invoice. The order is read-only input; totals are assumed well-formed.
type InvoiceService struct {
	tmpl *template.Template
}

func NewInvoiceService() *InvoiceService {
	return &InvoiceService{
		tmpl: template.Must(template.New("invoice").Parse(invoiceTemplate)),
	}
}

func (s *InvoiceService) Render(order models.Order) ([]byte, error) {
	data := invoiceData{
		ID:       order.ID,
		Date:     order.Date.Format("Jan 2, 2006"),
		Subtotal: "$" + order.Subtotal.StringFixed(2),
		Tax:      "$" + order.Tax.StringFixed(2),
		Total:    "$" + order.Total.StringFixed(2),
	}
	for _, item := range order.Items {
		lineTotal := item.Price.Mul(decimalFromInt(item.Quantity))
		data.Lines = append(data.Lines, invoiceLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    "$" + item.Price.StringFixed(2),
			Total:    "$" + lineTotal.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
