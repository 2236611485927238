package repository

import (
	"testing"
	"time"

	"luxelane/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(id string) models.Order {
	return models.Order{
		ID:   id,
		Date: time.Now().UTC(),
		Items: []models.OrderItem{
			{ID: "p1", Name: "Test", Price: decimal.RequireFromString("10.00"), Quantity: 1},
		},
		Subtotal: decimal.RequireFromString("10.00"),
		Tax:      decimal.RequireFromString("1.00"),
		Total:    decimal.RequireFromString("11.00"),
	}
}

func TestOrderRepositoryAppendAndList(t *testing.T) {
	repo := NewOrderRepository()

	repo.Append(sampleOrder("ORD-1"))
	repo.Append(sampleOrder("ORD-2"))

	orders := repo.List()
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].ID, "placement order is preserved")
	assert.Equal(t, "ORD-2", orders[1].ID)
	assert.Equal(t, 2, repo.Count())
}

func TestOrderRepositoryFindByID(t *testing.T) {
	repo := NewOrderRepository()
	repo.Append(sampleOrder("ORD-1"))

	order, err := repo.FindByID("ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.ID)

	_, err = repo.FindByID("ORD-404")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderRepositoryIsolatesStoredOrders(t *testing.T) {
	repo := NewOrderRepository()
	source := sampleOrder("ORD-1")
	repo.Append(source)

	// mutating the caller's copy after append must not reach the store
	source.Items[0].Quantity = 99

	stored, err := repo.FindByID("ORD-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Items[0].Quantity)

	// mutating a retrieved copy must not reach the store either
	stored.Items[0].Quantity = 50
	again, err := repo.FindByID("ORD-1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
}
