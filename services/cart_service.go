package services

import (
	"sync"

	"luxelane/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartStore owns the session's cart state. Every action is a pure transition
// over (state, input); the mutex serializes them because the HTTP host runs
// handlers concurrently and the transitions are read-modify-write.
type CartStore struct {
	mu     sync.Mutex
	state  models.CartState
	logger *zap.Logger
}

func NewCartStore(logger *zap.Logger) *CartStore {
	return &CartStore{logger: logger}
}

// AddItem merges the product into the cart: an existing line for the same
// product id gains quantity 1, otherwise a new line is appended. The cart
// panel is not opened; visibility is toggled explicitly.
func (s *CartStore) AddItem(product models.Product) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = addItem(s.state, product)
	s.logger.Debug("Cart item added", zap.String("product_id", product.ID))
	return cloneCartState(s.state)
}

// RemoveItem deletes the line for the given product id. A missing id is a
// no-op, not an error.
func (s *CartStore) RemoveItem(productID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = removeItem(s.state, productID)
	return cloneCartState(s.state)
}

// UpdateQuantity sets the line's quantity. A quantity <= 0 removes the line
// entirely; zero or negative quantities are never stored. The caller must
// reject non-integer input before dispatching here.
func (s *CartStore) UpdateQuantity(productID string, quantity int) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = updateQuantity(s.state, productID, quantity)
	return cloneCartState(s.state)
}

// ToggleCart flips the cart panel visibility.
func (s *CartStore) ToggleCart() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = !s.state.IsOpen
	return cloneCartState(s.state)
}

// CloseCart forces the panel closed. Idempotent.
func (s *CartStore) CloseCart() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = false
	return cloneCartState(s.state)
}

// ClearCart empties the items and leaves the panel visibility untouched.
func (s *CartStore) ClearCart() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = nil
	return cloneCartState(s.state)
}

// State returns a snapshot of the current cart state.
func (s *CartStore) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCartState(s.state)
}

// Subtotal is derived from the items on every call, never cached.
func (s *CartStore) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Subtotal(s.state.Items)
}

// --- pure transitions ---

func addItem(state models.CartState, product models.Product) models.CartState {
	items := make([]models.CartItem, len(state.Items))
	copy(items, state.Items)
	for i, item := range items {
		if item.ID == product.ID {
			items[i].Quantity++
			state.Items = items
			return state
		}
	}
	state.Items = append(items, models.CartItem{Product: product, Quantity: 1})
	return state
}

func removeItem(state models.CartState, productID string) models.CartState {
	items := make([]models.CartItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	state.Items = items
	return state
}

func updateQuantity(state models.CartState, productID string, quantity int) models.CartState {
	if quantity <= 0 {
		return removeItem(state, productID)
	}
	items := make([]models.CartItem, len(state.Items))
	copy(items, state.Items)
	for i, item := range items {
		if item.ID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	state.Items = items
	return state
}

func cloneCartState(state models.CartState) models.CartState {
	items := make([]models.CartItem, len(state.Items))
	copy(items, state.Items)
	state.Items = items
	return state
}
