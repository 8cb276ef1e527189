package models

import "time"

// ModuleName identifies a toggleable business vertical
type ModuleName string

const (
	ModuleFood     ModuleName = "food"
	ModuleGrocery  ModuleName = "grocery"
	ModuleServices ModuleName = "services"
)

// Module is the admin-controlled kill switch for a vertical. Every
// module-scoped request consults it before any other work.
type Module struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        ModuleName `json:"name" gorm:"uniqueIndex;not null"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true"`
	DisplayName string     `json:"display_name" gorm:"not null"`
	Description string     `json:"description"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
