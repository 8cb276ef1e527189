package models

import "time"

type Service struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Name        string            `json:"name" gorm:"not null"`
	Description string            `json:"description"`
	Category    string            `json:"category" gorm:"not null"`
	Image       string            `json:"image"`
	IsActive    bool              `json:"is_active" gorm:"default:true"`
	Providers   []ServiceProvider `json:"providers,omitempty" gorm:"foreignKey:ServiceID"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ServiceProvider is a person offering a service. Providers are not
// consumed by bookings; only the availability flag gates them.
type ServiceProvider struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ServiceID   uint      `json:"service_id" gorm:"not null"`
	ProviderID  uint      `json:"provider_id" gorm:"not null"` // user account of the provider
	Name        string    `json:"name" gorm:"not null"`
	Rating      float64   `json:"rating" gorm:"default:0"`
	Experience  int       `json:"experience" gorm:"default:0"` // years
	Price       float64   `json:"price" gorm:"not null"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
