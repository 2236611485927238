package models

import "github.com/shopspring/decimal"

// TaxRate is the fixed 10% tax applied to every order.
var TaxRate = decimal.NewFromFloat(0.10)

// Totals is the priced summary of a set of cart items. The same computation
// backs the cart subtotal, the checkout summary and order placement, so the
// three can never disagree.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Subtotal is the exact sum of price x quantity over the items. It is
// recomputed on every read and never cached in cart state.
func Subtotal(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// ComputeTotals derives subtotal, tax and total for the given items. Tax is
// rounded half-up to cents; total is subtotal plus the rounded tax, so
// total == subtotal + tax holds exactly.
func ComputeTotals(items []CartItem) Totals {
	subtotal := Subtotal(items)
	tax := subtotal.Mul(TaxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
