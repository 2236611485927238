package models

import "github.com/shopspring/decimal"

// Review is a customer review attached to a catalog product.
type Review struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Product is a catalog entity. The catalog owns it; carts reference it by
// value until an order snapshots the fields it needs.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	Images        []string         `json:"images"`
	Description   string           `json:"description"`
	Details       []string         `json:"details"`
	Stock         int              `json:"stock"`
	Reviews       []Review         `json:"reviews"`
}
