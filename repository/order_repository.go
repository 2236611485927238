package repository

import (
	"errors"
	"sync"

	"luxelane/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is the session's append-only order log. Orders are never
// edited or removed after placement; everything lives in memory and is lost
// when the session ends.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Append(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, cloneOrder(order))
}

// List returns all orders in placement order.
func (r *OrderRepository) List() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (r *OrderRepository) FindByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			clone := cloneOrder(o)
			return &clone, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *OrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// cloneOrder copies the item slice so callers can never mutate a stored order.
func cloneOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
