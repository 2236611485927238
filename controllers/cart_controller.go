package controllers

import (
	"errors"
	"net/http"

	"luxelane/middleware"
	"luxelane/repository"
	"luxelane/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{}

func NewCartController() *CartController {
	return &CartController{}
}

// GetCart returns the current cart state with its derived subtotal.
func (cc *CartController) GetCart(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":     session.Cart.State(),
		"subtotal": session.Cart.Subtotal(),
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddItem adds a catalog product to the cart. While unauthenticated the add
// is refused and the login prompt is requested instead.
func (cc *CartController) AddItem(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	state, err := session.AddToCart(req.ProductID)
	switch {
	case errors.Is(err, services.ErrLoginRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required", "login_prompt": true})
	case errors.Is(err, repository.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
	default:
		c.JSON(http.StatusOK, gin.H{"cart": state})
	}
}

// RemoveItem deletes the line for the product id; removing an absent item is
// not an error.
func (cc *CartController) RemoveItem(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	state := session.Cart.RemoveItem(c.Param("product_id"))
	c.JSON(http.StatusOK, gin.H{"cart": state})
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateQuantity sets a line's quantity. Non-integer input never reaches the
// store: JSON binding into *int rejects it here at the boundary.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be an integer"})
		return
	}

	state := session.Cart.UpdateQuantity(c.Param("product_id"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{"cart": state})
}

func (cc *CartController) ToggleCart(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": session.Cart.ToggleCart()})
}

func (cc *CartController) CloseCart(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": session.Cart.CloseCart()})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": session.Cart.ClearCart()})
}
