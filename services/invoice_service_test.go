package services

import (
	"testing"
	"time"

	"luxelane/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRender(t *testing.T) {
	order := models.Order{
		ID:   "ORD-1700000000000-0001",
		Date: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ID: "p1", Name: "Aurora Wireless Headphones", Price: decimal.RequireFromString("20.00"), Quantity: 2},
			{ID: "p2", Name: "Solstice Ceramic Mug Set", Price: decimal.RequireFromString("9.99"), Quantity: 1},
		},
		Subtotal: decimal.RequireFromString("49.99"),
		Tax:      decimal.RequireFromString("5.00"),
		Total:    decimal.RequireFromString("54.99"),
	}

	out, err := NewInvoiceService().Render(order)
	require.NoError(t, err)
	invoice := string(out)

	assert.Contains(t, invoice, "LuxeLane Invoice")
	assert.Contains(t, invoice, "ORD-1700000000000-0001")
	assert.Contains(t, invoice, "Aug 31, 2026")
	assert.Contains(t, invoice, "Aurora Wireless Headphones")
	assert.Contains(t, invoice, "$40.00") // 20.00 x2 line total
	assert.Contains(t, invoice, "$49.99")
	assert.Contains(t, invoice, "$5.00")
	assert.Contains(t, invoice, "$54.99")
	assert.Contains(t, invoice, "Thank you for your purchase!")
}
