package services

import (
	"ecart/internal/models"
	"ecart/internal/repositories"
)

// OrderService handles read access to placed orders.
type OrderService struct {
	repo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// RecentOrders retrieves the latest orders, newest first.
func (s *OrderService) RecentOrders(limit int) ([]models.Order, error) {
	return s.repo.GetRecent(limit)
}
