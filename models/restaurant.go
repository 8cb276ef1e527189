package models

import "time"

type Restaurant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description"`
	Cuisine      string     `json:"cuisine" gorm:"not null"`
	Image        string     `json:"image"`
	Rating       float64    `json:"rating" gorm:"default:0"`
	DeliveryTime int        `json:"delivery_time" gorm:"default:30"` // minutes
	DeliveryFee  float64    `json:"delivery_fee" gorm:"default:0"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	Menu         []MenuItem `json:"menu,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	Image        string    `json:"image"`
	Category     string    `json:"category" gorm:"default:'General'"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
