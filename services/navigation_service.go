package services

import (
	"sync"

	"luxelane/repository"

	"go.uber.org/zap"
)

// Page is the single active view of the storefront.
type Page string

const (
	PageList         Page = "list"
	PageDetail       Page = "detail"
	PageCheckout     Page = "checkout"
	PageSuccess      Page = "success"
	PageOrderHistory Page = "order_history"
)

// View is the navigation snapshot a client renders from.
type View struct {
	Page              Page   `json:"page"`
	SelectedProductID string `json:"selected_product_id,omitempty"`
	LastOrderID       string `json:"last_order_id,omitempty"`
	LoginPromptOpen   bool   `json:"login_prompt_open"`
}

// Navigator decides which page is active and holds the login-prompt flag. It
// owns no cart or order state; components emit intents and the navigator
// interprets them.
type Navigator struct {
	mu      sync.Mutex
	view    View
	catalog *repository.CatalogRepository
	logger  *zap.Logger
}

func NewNavigator(catalog *repository.CatalogRepository, logger *zap.Logger) *Navigator {
	return &Navigator{
		view:    View{Page: PageList},
		catalog: catalog,
		logger:  logger,
	}
}

// SelectProduct opens the detail page for a known product. An unknown id is
// a no-render condition: the navigator stays where it is and reports the
// error instead of showing a detail view with no backing product.
func (n *Navigator) SelectProduct(productID string) error {
	if _, err := n.catalog.FindByID(productID); err != nil {
		n.logger.Warn("Select of unknown product ignored", zap.String("product_id", productID))
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.Page = PageDetail
	n.view.SelectedProductID = productID
	return nil
}

// BackToList returns to the product list and clears the selection.
func (n *Navigator) BackToList() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.Page = PageList
	n.view.SelectedProductID = ""
}

func (n *Navigator) GoToCheckout() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.Page = PageCheckout
}

// OrderPlaced records the completed order id and shows the success page.
func (n *Navigator) OrderPlaced(orderID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.Page = PageSuccess
	n.view.LastOrderID = orderID
}

func (n *Navigator) ViewOrders() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.Page = PageOrderHistory
}

func (n *Navigator) ContinueShopping() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.Page = PageList
}

// RequestLogin opens the login prompt, e.g. after an unauthenticated
// add-to-cart was refused.
func (n *Navigator) RequestLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.LoginPromptOpen = true
}

func (n *Navigator) DismissLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view.LoginPromptOpen = false
}

func (n *Navigator) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.view
}
