package controllers

import (
	"errors"
	"net/http"

	"luxelane/middleware"
	"luxelane/models"
	"luxelane/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{}
}

// Enter starts a fresh checkout flow; the cart panel is closed and the
// checkout page becomes active.
func (cc *CheckoutController) Enter(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	flow := session.GoToCheckout()
	c.JSON(http.StatusOK, checkoutState(session, flow))
}

// GetState returns the flow step, entered shipping data, payment validity
// and the live order summary.
func (cc *CheckoutController) GetState(c *gin.Context) {
	session, flow, ok := activeCheckout(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, checkoutState(session, flow))
}

// SubmitShipping advances to the payment step once every field is filled.
func (cc *CheckoutController) SubmitShipping(c *gin.Context) {
	session, flow, ok := activeCheckout(c)
	if !ok {
		return
	}

	var info models.ShippingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all shipping fields are required"})
		return
	}

	if err := flow.SubmitShipping(info); err != nil {
		switch {
		case errors.Is(err, services.ErrShippingIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": "all shipping fields are required"})
		case errors.Is(err, services.ErrWrongStep):
			c.JSON(http.StatusConflict, gin.H{"error": "not on the shipping step"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit shipping"})
		}
		return
	}

	c.JSON(http.StatusOK, checkoutState(session, flow))
}

// UpdatePayment stores the card fields and reports the live validity of the
// payment predicate, mirroring per-keystroke validation.
func (cc *CheckoutController) UpdatePayment(c *gin.Context) {
	_, flow, ok := activeCheckout(c)
	if !ok {
		return
	}

	var info models.PaymentInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": flow.UpdatePayment(info)})
}

// Back steps from payment to shipping, or exits checkout entirely from the
// shipping step.
func (cc *CheckoutController) Back(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := session.CheckoutBack(); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": session.Nav.View()})
}

// SubmitPayment re-checks the payment predicate and, when it holds, places
// the order.
func (cc *CheckoutController) SubmitPayment(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	order, err := session.SubmitPayment()
	switch {
	case errors.Is(err, services.ErrNoActiveCheckout):
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
	case errors.Is(err, services.ErrPaymentInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment details are invalid"})
	case errors.Is(err, services.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{"error": "not on the payment step"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
	default:
		c.JSON(http.StatusCreated, gin.H{"order": order, "view": session.Nav.View()})
	}
}

func activeCheckout(c *gin.Context) (*services.AppSession, *services.CheckoutFlow, bool) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, nil, false
	}
	flow, err := session.Checkout()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return nil, nil, false
	}
	return session, flow, true
}

func checkoutState(session *services.AppSession, flow *services.CheckoutFlow) gin.H {
	return gin.H{
		"step":          flow.Step(),
		"shipping":      flow.Shipping(),
		"payment_valid": flow.PaymentValid(),
		"summary":       flow.Summary(),
		"items":         session.Cart.State().Items,
	}
}
