package services

import (
	"errors"
	"sync"
	"time"

	"luxelane/models"
	"luxelane/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrLoginRequired    = errors.New("login required")
	ErrNoActiveCheckout = errors.New("no active checkout")
)

// AppSession is one application run: it owns the session's cart store, user
// store, order log, notifier and navigator, and threads the intents between
// them. Each state slice has a single writer; the session only coordinates.
type AppSession struct {
	ID        uuid.UUID
	CreatedAt time.Time

	Cart     *CartStore
	User     *UserStore
	Orders   *OrderService
	Notifier *ToastNotifier
	Nav      *Navigator

	catalog *repository.CatalogRepository
	auth    *MockAuthenticator
	logger  *zap.Logger

	mu       sync.Mutex
	checkout *CheckoutFlow
	lastSeen time.Time
}

func NewAppSession(catalog *repository.CatalogRepository, toastTTL time.Duration, logger *zap.Logger) *AppSession {
	id := uuid.New()
	log := logger.With(zap.String("session_id", id.String()))
	notifier := NewToastNotifier(toastTTL, log)
	return &AppSession{
		ID:        id,
		CreatedAt: time.Now(),
		Cart:      NewCartStore(log),
		User:      NewUserStore(),
		Orders:    NewOrderService(repository.NewOrderRepository(), notifier, log),
		Notifier:  notifier,
		Nav:       NewNavigator(catalog, log),
		catalog:   catalog,
		auth:      NewMockAuthenticator(),
		logger:    log,
		lastSeen:  time.Now(),
	}
}

// AddToCart adds a catalog product to the cart. While unauthenticated the
// add is refused, the cart stays untouched and the login prompt is requested
// instead.
func (s *AppSession) AddToCart(productID string) (models.CartState, error) {
	if !s.User.IsAuthenticated() {
		s.Nav.RequestLogin()
		return s.Cart.State(), ErrLoginRequired
	}
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return s.Cart.State(), err
	}
	return s.Cart.AddItem(*product), nil
}

// Login runs the mock authenticator and, on success, stores the user and
// dismisses the login prompt.
func (s *AppSession) Login(email, password string) (models.UserState, error) {
	user, err := s.auth.Authenticate(email, password)
	if err != nil {
		return s.User.State(), err
	}
	state := s.User.Login(user)
	s.Nav.DismissLogin()
	s.logger.Info("User logged in", zap.String("email", user.Email))
	return state, nil
}

func (s *AppSession) Logout() models.UserState {
	return s.User.Logout()
}

// GoToCheckout closes the cart panel, starts a fresh checkout flow and
// switches to the checkout page.
func (s *AppSession) GoToCheckout() *CheckoutFlow {
	s.Cart.CloseCart()
	s.mu.Lock()
	s.checkout = NewCheckoutFlow(s.Cart, s.logger)
	flow := s.checkout
	s.mu.Unlock()
	s.Nav.GoToCheckout()
	return flow
}

func (s *AppSession) Checkout() (*CheckoutFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil {
		return nil, ErrNoActiveCheckout
	}
	return s.checkout, nil
}

// CheckoutBack steps the flow backwards. Backing out of the shipping step
// exits checkout entirely: the flow is discarded and navigation returns to
// the list, cart contents untouched.
func (s *AppSession) CheckoutBack() error {
	flow, err := s.Checkout()
	if err != nil {
		return err
	}
	if flow.Back() {
		s.mu.Lock()
		s.checkout = nil
		s.mu.Unlock()
		s.Nav.BackToList()
	}
	return nil
}

// SubmitPayment completes the flow: the payment predicate is re-checked, the
// order is placed, the flow state is discarded and navigation moves to the
// success page with the new order id.
func (s *AppSession) SubmitPayment() (models.Order, error) {
	flow, err := s.Checkout()
	if err != nil {
		return models.Order{}, err
	}
	if err := flow.SubmitPayment(); err != nil {
		return models.Order{}, err
	}
	order := s.Orders.PlaceOrder(s.Cart)
	s.mu.Lock()
	s.checkout = nil
	s.mu.Unlock()
	s.Nav.OrderPlaced(order.ID)
	return order, nil
}

// LeaveCheckout discards any in-progress checkout without side effects, for
// navigation intents that move elsewhere mid-flow.
func (s *AppSession) LeaveCheckout() {
	s.mu.Lock()
	s.checkout = nil
	s.mu.Unlock()
}

func (s *AppSession) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *AppSession) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
