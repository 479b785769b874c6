package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"ecart/internal/models"
	"ecart/internal/repositories"
)

// CatalogService handles business logic related to the product catalog.
type CatalogService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListProducts retrieves the full catalog.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// AddProduct validates and inserts a new catalog entry. A blank
// category defaults to "General".
func (s *CatalogService) AddProduct(product *models.Product) error {
	if product.Category == "" {
		product.Category = "General"
	}
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}
	return s.repo.Create(product)
}
