package models

import "time"

// Product represents a catalog entry in the store.
// The name carries a unique index so that seeding can rely on
// insert-on-conflict-do-nothing instead of a racy check-then-insert.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;uniqueIndex" validate:"required,max=255"`
	Description string    `json:"description" gorm:"size:1000" validate:"omitempty,max=1000"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null;default:0" validate:"gte=0"`
	Stock       int       `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
	Category    string    `json:"category" gorm:"size:100;default:General"`
	CreatedAt   time.Time `json:"-"`
}
