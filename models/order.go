package models

import "time"

// OrderStatus represents the delivery lifecycle of an order
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// PaymentStatus is a flag, not a gateway integration
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// PaymentMethod chosen by the user at checkout
type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
	PayUPI  PaymentMethod = "upi"
)

// Order is an append-only record: created once by checkout, mutated
// only through status updates, never deleted.
type Order struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"user_id" gorm:"not null;index"`
	ModuleType      ModuleName    `json:"module_type" gorm:"not null;index"`
	Items           []OrderLine   `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64       `json:"total_amount" gorm:"not null"`
	DeliveryAddress string        `json:"delivery_address"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"not null;default:'cash'"`
	Status          OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty"`
}

// OrderLine snapshots catalog state at order time. Later price changes
// in the catalog must not affect placed orders.
type OrderLine struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null;index"`
	ItemID   uint    `json:"item_id" gorm:"not null"`
	Name     string  `json:"name" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
}
