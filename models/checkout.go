package models

// ShippingInfo is the contact/address form of the checkout flow. Every field
// is required before the flow may advance to the payment step.
type ShippingInfo struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// Complete reports whether every shipping field is non-empty. The checkout
// flow re-checks this on submit rather than trusting the request binding.
func (s ShippingInfo) Complete() bool {
	return s.Name != "" && s.Email != "" && s.Address != "" &&
		s.City != "" && s.PostalCode != "" && s.Country != ""
}

// PaymentInfo is the simulated card form. It is validated continuously but
// never persisted or transmitted anywhere.
type PaymentInfo struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVC        string `json:"cvc"`
}
