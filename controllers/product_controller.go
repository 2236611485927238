package controllers

import (
	"net/http"

	"luxelane/repository"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Catalog *repository.CatalogRepository
}

func NewProductController(catalog *repository.CatalogRepository) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetProducts returns the full catalog in its seeded order.
func (pc *ProductController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": pc.Catalog.List()})
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.Catalog.FindByID(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
