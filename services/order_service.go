package services

import (
	"fmt"
	"sync/atomic"
	"time"

	"luxelane/models"
	"luxelane/repository"

	"go.uber.org/zap"
)

// Notifier receives user-visible confirmation messages. Display and
// auto-dismiss timing are its own concern.
type Notifier interface {
	Show(message string)
}

// OrderService turns the current cart into an immutable order. It performs
// no validation of its own: the checkout flow has already gated payment, and
// an empty cart mechanically produces a zero-total order.
type OrderService struct {
	repo     *repository.OrderRepository
	notifier Notifier
	logger   *zap.Logger
	seq      atomic.Uint64
}

func NewOrderService(repo *repository.OrderRepository, notifier Notifier, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// PlaceOrder snapshots the cart into a new order, appends it to the session's
// order log, clears the cart and signals the confirmation notification. The
// returned order carries the id the success view displays.
func (s *OrderService) PlaceOrder(cart *CartStore) models.Order {
	items := cart.State().Items
	totals := models.ComputeTotals(items)

	orderItems := make([]models.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = models.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	order := models.Order{
		ID:       s.nextOrderID(),
		Date:     time.Now().UTC(),
		Items:    orderItems,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}

	s.repo.Append(order)
	cart.ClearCart()
	s.notifier.Show("Confirmation email sent to your inbox!")

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return order
}

func (s *OrderService) Orders() []models.Order {
	return s.repo.List()
}

func (s *OrderService) OrderByID(id string) (*models.Order, error) {
	return s.repo.FindByID(id)
}

// nextOrderID combines a time-based component with a per-session sequence so
// two placements in the same millisecond still get distinct ids.
func (s *OrderService) nextOrderID() string {
	return fmt.Sprintf("ORD-%d-%04d", time.Now().UnixMilli(), s.seq.Add(1))
}
