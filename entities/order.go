package entities

import (
	"time"

	"github.com/google/uuid"
)

// Order.Status codes are opaque to the backend; clients interpret them.
// 0 means placed, crew members overwrite it freely.
const OrderStatusPlaced = 0

type Order struct {
	ID             uint       `gorm:"primary_key" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	DeliveryCrewID *uuid.UUID `json:"delivery_crew_id,omitempty"`
	Status         int        `json:"status"`
	Total          float64    `gorm:"type:decimal(10,2)" json:"total"`
	Date           time.Time  `gorm:"type:timestamp" json:"date"`
	PaymentStatus  string     `json:"payment_status,omitempty"` // Pending, Settled, Failed
	InvoiceURL     string     `json:"invoice_url,omitempty"`

	User         *User `gorm:"foreignKey:UserID" json:"-"`
	DeliveryCrew *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	Timestamp
}
