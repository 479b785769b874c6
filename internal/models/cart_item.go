package models

import "time"

// CartItem is a persisted (product, quantity) pairing, an unconfirmed
// purchase intent. The unique index on product_id enforces at most one
// row per product; adding the same product again merges quantities.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
}

// CartEntry is a cart row joined to its product, as rendered by the
// UI and the /cart API.
type CartEntry struct {
	CartID      uint    `json:"cart_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}
