package domain

import "errors"

var (
	MessageSuccessAddMenuItem    = "menu item added successfully"
	MessageSuccessUpdateMenuItem = "menu item updated successfully"
	MessageSuccessDeleteMenuItem = "menu item deleted successfully"
	MessageSuccessGetMenuItems   = "menu items retrieved successfully"

	MessageFailedAddMenuItem    = "failed to add menu item"
	MessageFailedUpdateMenuItem = "failed to update menu item"
	MessageFailedDeleteMenuItem = "failed to delete menu item"
	MessageFailedGetMenuItems   = "failed to retrieve menu items"

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("price must not be negative")
)

type (
	AddMenuItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		Price       float64 `json:"price" validate:"min=0"`
		Category    string  `json:"category" validate:"omitempty"`
		IsAvailable bool    `json:"is_available"`
	}

	UpdateMenuItemRequest struct {
		Name        string   `json:"name" validate:"omitempty"`
		Price       *float64 `json:"price" validate:"omitempty,min=0"`
		Category    string   `json:"category" validate:"omitempty"`
		IsAvailable *bool    `json:"is_available"`
	}

	MenuItemResponse struct {
		ID          string  `json:"id"`
		VendorID    string  `json:"vendor_id"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		IsAvailable bool    `json:"is_available"`
	}
)
