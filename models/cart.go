package models

// CartItem is a product plus a quantity. Identity is the product id: a cart
// holds at most one CartItem per product id, and quantity is always >= 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartState holds the cart line items in insertion order and the visibility
// of the cart panel. It is only ever mutated through the cart store actions.
type CartState struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}
