package controllers

import (
	"net/http"

	"luxelane/middleware"

	"github.com/gin-gonic/gin"
)

type ViewController struct{}

func NewViewController() *ViewController {
	return &ViewController{}
}

// GetView returns the full render snapshot: active page, selection, last
// order id, login prompt, cart panel visibility and the current toast.
func (vc *ViewController) GetView(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"view":      session.Nav.View(),
		"cart_open": session.Cart.State().IsOpen,
		"user":      session.User.State(),
		"toast":     session.Notifier.Current(),
	})
}

// SelectProduct opens the detail page. An unknown product id never renders:
// the view is left unchanged.
func (vc *ViewController) SelectProduct(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := session.Nav.SelectProduct(c.Param("product_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": session.Nav.View()})
}

// Back returns to the product list, discarding any in-progress checkout.
func (vc *ViewController) Back(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	session.LeaveCheckout()
	session.Nav.BackToList()
	c.JSON(http.StatusOK, gin.H{"view": session.Nav.View()})
}

func (vc *ViewController) ViewOrders(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	session.LeaveCheckout()
	session.Nav.ViewOrders()
	c.JSON(http.StatusOK, gin.H{"view": session.Nav.View()})
}

func (vc *ViewController) ContinueShopping(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	session.Nav.ContinueShopping()
	c.JSON(http.StatusOK, gin.H{"view": session.Nav.View()})
}

func (vc *ViewController) DismissLogin(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	session.Nav.DismissLogin()
	c.JSON(http.StatusOK, gin.H{"view": session.Nav.View()})
}

func (vc *ViewController) DismissToast(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	session.Notifier.Dismiss()
	c.Status(http.StatusNoContent)
}
