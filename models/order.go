package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is the snapshot of a cart line taken at placement time. Later
// changes to the catalog or the cart never reach a placed order.
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is an immutable, finalized purchase record. Orders are append-only
// for the lifetime of the session and are never edited or removed.
type Order struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Items    []OrderItem     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
