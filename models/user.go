package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser            UserRole = "user"
	RoleAdmin           UserRole = "admin"
	RoleServiceProvider UserRole = "service_provider"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'user'"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"` // default delivery/booking address
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
