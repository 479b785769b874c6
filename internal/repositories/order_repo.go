package repositories

import (
	"ecart/internal/models"
)

// OrderRepository defines the interface for order data access. Orders
// are written only by checkout, so the repository is read-only.
type OrderRepository interface {
	GetRecent(limit int) ([]models.Order, error)
}
