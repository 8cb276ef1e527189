package models

import "time"

// BookingStatus represents the lifecycle of a service booking
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Booking is a scheduled service appointment. ServiceName, ProviderName
// and Amount are snapshots of catalog state at booking time.
type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	ServiceID     uint          `json:"service_id" gorm:"not null"`
	ProviderID    uint          `json:"provider_id" gorm:"not null"`
	ServiceName   string        `json:"service_name" gorm:"not null"`
	ProviderName  string        `json:"provider_name" gorm:"not null"`
	ScheduledDate string        `json:"scheduled_date" gorm:"not null"`
	ScheduledTime string        `json:"scheduled_time" gorm:"not null"`
	Address       string        `json:"address"`
	Amount        float64       `json:"amount" gorm:"not null"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null;default:'cash'"`
	Status        BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`

	// Feedback is attachable exactly once, only after completion.
	// A nil rating means no feedback yet.
	FeedbackRating  *int   `json:"feedback_rating,omitempty"`
	FeedbackComment string `json:"feedback_comment,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
