package request

import "github.com/google/uuid"

// CreateCategoryRequest represents a menu category creation request
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	SortOrder int    `json:"sort_order" binding:"min=0"`
}

// UpdateCategoryRequest represents a menu category update request
type UpdateCategoryRequest struct {
	Name      string `json:"name" binding:"omitempty,min=2,max=255"`
	SortOrder *int   `json:"sort_order" binding:"omitempty,min=0"`
}

// IngredientRequest represents one ingredient on a menu item
type IngredientRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	Removable bool   `json:"removable"`
}

// CreateMenuItemRequest represents a menu item creation request
type CreateMenuItemRequest struct {
	CategoryID  *uuid.UUID          `json:"category_id"`
	Name        string              `json:"name" binding:"required,min=2,max=255"`
	Price       float64             `json:"price" binding:"min=0"`
	Available   *bool               `json:"available"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"omitempty,dive"`
}

// UpdateMenuItemRequest represents a menu item update request
type UpdateMenuItemRequest struct {
	CategoryID  *uuid.UUID           `json:"category_id"`
	Name        string               `json:"name" binding:"omitempty,min=2,max=255"`
	Price       *float64             `json:"price" binding:"omitempty,min=0"`
	Available   *bool                `json:"available"`
	Ingredients *[]IngredientRequest `json:"ingredients" binding:"omitempty,dive"`
}

// MenuItemFilterRequest represents menu item filter parameters
type MenuItemFilterRequest struct {
	Search        string `form:"search"`
	CategoryID    string `form:"category_id"`
	AvailableOnly bool   `form:"available_only"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
