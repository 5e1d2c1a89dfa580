package entities

import (
	"github.com/google/uuid"
)

type Cart struct {
	ID         uint      `gorm:"primary_key" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	MenuItemID uint      `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `gorm:"type:decimal(10,2)" json:"unit_price"`
	// TotalPrice is written by whoever mutates the line; it is never
	// recomputed when the menu item's price changes afterwards.
	TotalPrice float64 `gorm:"type:decimal(10,2)" json:"total_price"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Timestamp
}
