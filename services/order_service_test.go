package services

import (
	"testing"

	"luxelane/models"
	"luxelane/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Show(message string) {
	m.Called(message)
}

func newTestOrderService(notifier Notifier) *OrderService {
	if notifier == nil {
		n := new(MockNotifier)
		n.On("Show", mock.Anything).Maybe()
		notifier = n
	}
	return NewOrderService(repository.NewOrderRepository(), notifier, zap.NewNop())
}

func TestPlaceOrder(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("Show", "Confirmation email sent to your inbox!").Once()

	svc := newTestOrderService(notifier)
	cart := NewCartStore(zap.NewNop())
	cart.AddItem(testProduct("p1", "20.00"))
	cart.AddItem(testProduct("p1", "20.00"))
	cart.AddItem(testProduct("p2", "9.99"))
	snapshot := cart.State().Items

	order := svc.PlaceOrder(cart)

	t.Run("Cart Becomes Empty", func(t *testing.T) {
		assert.Empty(t, cart.State().Items)
	})

	t.Run("Exactly One Order Appended", func(t *testing.T) {
		orders := svc.Orders()
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
	})

	t.Run("Items Match The Pre-Placement Snapshot", func(t *testing.T) {
		require.Len(t, order.Items, len(snapshot))
		for i, item := range order.Items {
			assert.Equal(t, snapshot[i].ID, item.ID)
			assert.Equal(t, snapshot[i].Name, item.Name)
			assert.Equal(t, snapshot[i].Quantity, item.Quantity)
			assert.True(t, item.Price.Equal(snapshot[i].Price))
		}
	})

	t.Run("Totals Match The Shared Computation", func(t *testing.T) {
		expected := models.ComputeTotals(snapshot)
		assert.True(t, order.Subtotal.Equal(expected.Subtotal))
		assert.True(t, order.Tax.Equal(expected.Tax))
		assert.True(t, order.Total.Equal(expected.Total))
		assert.True(t, order.Total.Equal(order.Subtotal.Add(order.Tax)))
	})

	t.Run("Confirmation Is Signalled", func(t *testing.T) {
		notifier.AssertExpectations(t)
	})
}

func TestPlaceOrderIDsAreUnique(t *testing.T) {
	svc := newTestOrderService(nil)
	cart := NewCartStore(zap.NewNop())

	cart.AddItem(testProduct("p1", "20.00"))
	first := svc.PlaceOrder(cart)

	cart.AddItem(testProduct("p2", "9.99"))
	second := svc.PlaceOrder(cart)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Contains(t, first.ID, "ORD-")
	assert.Len(t, svc.Orders(), 2)
}

func TestPlacedOrderIsImmutable(t *testing.T) {
	svc := newTestOrderService(nil)
	cart := NewCartStore(zap.NewNop())
	cart.AddItem(testProduct("p1", "20.00"))

	order := svc.PlaceOrder(cart)

	// later cart activity must not reach the placed order
	cart.AddItem(testProduct("p2", "9.99"))
	cart.AddItem(testProduct("p2", "9.99"))

	stored, err := svc.OrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "p1", stored.Items[0].ID)

	// mutating a retrieved copy must not reach the stored order either
	stored.Items[0].Quantity = 99
	again, err := svc.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestPlaceOrderWithEmptyCart(t *testing.T) {
	svc := newTestOrderService(nil)
	cart := NewCartStore(zap.NewNop())

	order := svc.PlaceOrder(cart)

	assert.Empty(t, order.Items)
	assert.True(t, order.Subtotal.Equal(decimal.Zero))
	assert.True(t, order.Total.Equal(decimal.Zero))
	assert.Len(t, svc.Orders(), 1)
}

func TestOrderByIDNotFound(t *testing.T) {
	svc := newTestOrderService(nil)
	_, err := svc.OrderByID("ORD-does-not-exist")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
