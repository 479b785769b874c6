package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"ecart/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetRecent retrieves the most recent orders, newest first.
func (r *GORMOrderRepository) GetRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	return orders, nil
}
