package repositories

import (
	"ecart/internal/models"
)

// ProductRepository defines the interface for product data access.
// Products are created and listed only; the catalog has no update or
// delete path.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
}
