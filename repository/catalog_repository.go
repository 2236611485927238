package repository

import (
	"errors"

	"luxelane/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogRepository holds the immutable product catalog, seeded once at
// startup. There is no write path back into it.
type CatalogRepository struct {
	products []models.Product
	byID     map[string]models.Product
}

func NewCatalogRepository(products []models.Product) *CatalogRepository {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogRepository{
		products: products,
		byID:     byID,
	}
}

// List returns the catalog in its seeded order.
func (r *CatalogRepository) List() []models.Product {
	return r.products
}

func (r *CatalogRepository) FindByID(id string) (*models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}
