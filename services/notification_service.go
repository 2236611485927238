package services

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Toast is a transient user-visible notification.
type Toast struct {
	Message string    `json:"message"`
	ShownAt time.Time `json:"shown_at"`
}

// ToastNotifier keeps the session's current toast. Auto-dismiss after the
// configured TTL is purely cosmetic and has no effect on cart, order or
// session state.
type ToastNotifier struct {
	mu      sync.Mutex
	current *Toast
	ttl     time.Duration
	logger  *zap.Logger
}

func NewToastNotifier(ttl time.Duration, logger *zap.Logger) *ToastNotifier {
	return &ToastNotifier{ttl: ttl, logger: logger}
}

func (n *ToastNotifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = &Toast{Message: message, ShownAt: time.Now()}
	n.logger.Debug("Toast shown", zap.String("message", message))
}

func (n *ToastNotifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
}

// Current returns the active toast, or nil once the TTL has elapsed.
func (n *ToastNotifier) Current() *Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	if time.Since(n.current.ShownAt) > n.ttl {
		n.current = nil
		return nil
	}
	toast := *n.current
	return &toast
}
