package models

import "time"

// Order records one completed checkout: the whole cart collapsed into a
// single total. Orders are never updated or deleted after creation.
type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Reference   string    `json:"reference" gorm:"size:36;uniqueIndex"`
	TotalAmount float64   `json:"total_amount" gorm:"type:decimal(10,2);not null;default:0"`
	Status      string    `json:"status" gorm:"size:50;not null;default:pending"`
	CreatedAt   time.Time `json:"created_at"`
}
