package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddMenuItem     = "menu item added successfully"
	MessageSuccessUpdateMenuItem  = "menu item updated successfully"
	MessageSuccessDeleteMenuItem  = "menu item deleted successfully"
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessUploadItemImage = "menu item image uploaded successfully"
	MessageSuccessAddCategory     = "category added successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessUpdateFeatured  = "item of the day updated successfully"

	MessageFailedAddMenuItem     = "failed to add menu item"
	MessageFailedUpdateMenuItem  = "failed to update menu item"
	MessageFailedDeleteMenuItem  = "failed to delete menu item"
	MessageFailedGetMenuItems    = "failed to retrieve menu items"
	MessageFailedUploadItemImage = "failed to upload menu item image"
	MessageFailedAddCategory     = "failed to add category"
	MessageFailedGetCategories   = "failed to retrieve categories"
	MessageFailedUpdateFeatured  = "failed to update item of the day"

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidPrice     = errors.New("price must not be negative")
)

// OrderingPrice is the only ordering value the menu listing recognizes;
// anything else leaves the storage order untouched.
const OrderingPrice = "price"

type (
	AddMenuItemRequest struct {
		Title      string  `json:"title" validate:"required"`
		Price      float64 `json:"price" validate:"required,gte=0"`
		CategoryID uint    `json:"category_id" validate:"required"`
		Featured   bool    `json:"featured"`
	}

	UpdateMenuItemRequest struct {
		Title      string   `json:"title" validate:"omitempty"`
		Price      *float64 `json:"price" validate:"omitempty,gte=0"`
		CategoryID uint     `json:"category_id" validate:"omitempty"`
		Featured   *bool    `json:"featured"`
	}

	MenuItemResponse struct {
		ID         uint    `json:"id"`
		Title      string  `json:"title"`
		Price      float64 `json:"price"`
		CategoryID uint    `json:"category_id"`
		Featured   bool    `json:"featured"`
		ImageURL   string  `json:"image_url,omitempty"`
	}

	MenuItemFilter struct {
		Category uint
		Ordering string
	}

	SetFeaturedRequest struct {
		ID       uint  `json:"id" validate:"required"`
		Featured *bool `json:"featured" validate:"required"`
	}

	UploadItemImageRequest struct {
		MenuItemID uint                  `json:"menu_item_id" form:"menu_item_id" validate:"required"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	AddCategoryRequest struct {
		Title string `json:"title" validate:"required"`
		Slug  string `json:"slug" validate:"required"`
	}

	CategoryResponse struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
)
