package repositories

import (
	"fmt"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecart/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetItems retrieves all cart rows joined to their products, newest first.
// An empty cart yields an empty slice, never nil: the /cart API must
// serialize it as a JSON array.
func (r *GORMCartRepository) GetItems() ([]models.CartEntry, error) {
	entries := make([]models.CartEntry, 0)
	err := r.db.Raw(`
		SELECT c.id AS cart_id, c.product_id, p.name AS product_name,
		       p.price, c.quantity,
		       ROUND(p.price * c.quantity, 2) AS subtotal
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		ORDER BY c.added_at DESC, c.id DESC`).Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	return entries, nil
}

// Add upserts a cart row for the product. The unique index on product_id
// makes the merge atomic: concurrent adds of the same product serialize
// on the constraint instead of racing a lookup-then-update.
func (r *GORMCartRepository) Add(productID uint, quantity int) error {
	item := models.CartItem{ProductID: productID, Quantity: quantity}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
			}),
		}).Create(&item).Error
	})
	if err != nil {
		return fmt.Errorf("failed to add product %d to cart: %w", productID, err)
	}
	return nil
}

// Remove deletes a cart row by its ID.
func (r *GORMCartRepository) Remove(cartID uint) error {
	if err := r.db.Delete(&models.CartItem{}, cartID).Error; err != nil {
		return fmt.Errorf("failed to remove cart item %d: %w", cartID, err)
	}
	return nil
}

// Total returns the cart total, zero for an empty cart.
func (r *GORMCartRepository) Total() (float64, error) {
	return cartTotal(r.db)
}

func cartTotal(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Raw(`
		SELECT COALESCE(SUM(p.price * c.quantity), 0)
		FROM cart_items c
		JOIN products p ON p.id = c.product_id`).Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute cart total: %w", err)
	}
	return math.Round(total*100) / 100, nil
}

// Checkout runs the read-total, insert-order, clear-cart sequence inside
// one transaction, so a failure at any step leaves both tables untouched.
func (r *GORMCartRepository) Checkout(reference string) (*models.Order, error) {
	var order *models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		total, err := cartTotal(tx)
		if err != nil {
			return err
		}
		if total == 0 {
			return ErrEmptyCart
		}
		order = &models.Order{
			Reference:   reference,
			TotalAmount: total,
			Status:      "completed",
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
