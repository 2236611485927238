package controllers

import (
	"fmt"
	"net/http"

	"luxelane/middleware"
	"luxelane/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Invoices *services.InvoiceService
}

func NewOrderController(invoices *services.InvoiceService) *OrderController {
	return &OrderController{Invoices: invoices}
}

// GetOrders returns the session's order history in placement order.
func (oc *OrderController) GetOrders(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": session.Orders.Orders()})
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	order, err := session.Orders.OrderByID(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetInvoice renders the order as a downloadable plain-text invoice.
func (oc *OrderController) GetInvoice(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	order, err := session.Orders.OrderByID(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	invoice, err := oc.Invoices.Render(*order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render invoice"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.txt", order.ID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", invoice)
}
