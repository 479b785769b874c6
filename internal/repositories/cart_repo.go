package repositories

import (
	"errors"

	"ecart/internal/models"
)

// ErrEmptyCart is returned by Checkout when the cart total is zero.
// It is a user error, not a database failure.
var ErrEmptyCart = errors.New("cart is empty")

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetItems returns the cart joined to its products, newest first.
	GetItems() ([]models.CartEntry, error)
	// Add merges quantity into an existing row for the product, or
	// inserts a new one. At most one row per product ever exists.
	Add(productID uint, quantity int) error
	// Remove deletes a cart row by its ID. Removing a missing row is
	// not an error.
	Remove(cartID uint) error
	// Total returns the sum of price * quantity across the cart.
	Total() (float64, error)
	// Checkout atomically turns the whole cart into one completed
	// order: compute the total, insert the order, clear the cart.
	// Returns ErrEmptyCart when the total is zero.
	Checkout(reference string) (*models.Order, error)
}
