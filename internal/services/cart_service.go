package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"ecart/internal/models"
	"ecart/internal/repositories"
)

// EventPublisher publishes order events to a message broker. A nil
// publisher disables eventing entirely; the cart works without a broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CartService handles business logic for the shopping cart and checkout.
type CartService struct {
	repo      repositories.CartRepository
	publisher EventPublisher
}

// NewCartService creates a new CartService. publisher may be nil.
func NewCartService(repo repositories.CartRepository, publisher EventPublisher) *CartService {
	return &CartService{
		repo:      repo,
		publisher: publisher,
	}
}

// Items retrieves the cart contents joined to their products.
func (s *CartService) Items() ([]models.CartEntry, error) {
	return s.repo.GetItems()
}

// Total retrieves the cart total.
func (s *CartService) Total() (float64, error) {
	return s.repo.Total()
}

// Add merges quantity into the cart row for the product, creating the
// row if the product is not in the cart yet.
func (s *CartService) Add(productID uint, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return s.repo.Add(productID, quantity)
}

// Remove deletes a cart row by its ID.
func (s *CartService) Remove(cartID uint) error {
	return s.repo.Remove(cartID)
}

// Checkout converts the whole cart into one completed order and clears
// the cart, all inside a single transaction. On success an order event
// is published to the order_queue; a publish failure is logged and
// never fails a checkout that already committed.
func (s *CartService) Checkout() (*models.Order, error) {
	order, err := s.repo.Checkout(uuid.New().String())
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"order_id":  order.ID,
			"reference": order.Reference,
			"total":     order.TotalAmount,
			"status":    order.Status,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal order event: %v", err)
		} else if err := s.publisher.Publish("", "order_queue", body); err != nil {
			log.Printf("Warning: failed to publish order event for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}
