package models

import "time"

// GroceryItem carries a stock counter, unlike menu items which only
// have an availability flag. Stock is decremented by confirmed orders
// and must never go negative.
type GroceryItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Image       string    `json:"image"`
	Category    string    `json:"category" gorm:"not null"`
	Unit        string    `json:"unit" gorm:"default:'piece'"`
	Stock       int       `json:"stock" gorm:"default:0"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
