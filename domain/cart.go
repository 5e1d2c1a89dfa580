package domain

import "errors"

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddToCart      = "item added to cart successfully"
	MessageSuccessRemoveFromCart = "item removed from cart successfully"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedRemoveFromCart = "failed to remove item from cart"

	ErrCartLineNotFound = errors.New("cart line not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

type (
	AddToCartRequest struct {
		MenuItemID uint `json:"menu_item_id" validate:"required"`
		Quantity   int  `json:"quantity" validate:"required,min=1"`
	}

	CartLineResponse struct {
		ID         uint    `json:"id"`
		MenuItemID uint    `json:"menu_item_id"`
		Title      string  `json:"title,omitempty"`
		Quantity   int     `json:"quantity"`
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}
)
