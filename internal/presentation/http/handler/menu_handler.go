package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/application/service"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	"github.com/nepdine/dinepos-api/internal/presentation/http/dto/request"
	"github.com/nepdine/dinepos-api/internal/presentation/http/dto/response"
	"github.com/nepdine/dinepos-api/internal/presentation/http/middleware"
	"github.com/nepdine/dinepos-api/pkg/pagination"
)

// MenuHandler handles menu category and item HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListCategories handles listing menu categories
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", gin.H{
		"categories": categories,
	})
}

// CreateCategory handles creating a menu category
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	if tenantID == uuid.Nil {
		response.BadRequest(c, "No active tenant")
		return
	}

	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	category, err := h.menuService.CreateCategory(c.Request.Context(), &service.CreateCategoryInput{
		TenantID:  tenantID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles updating a menu category
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	category, err := h.menuService.UpdateCategory(c.Request.Context(), &service.UpdateCategoryInput{
		ID:        id,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a menu category
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}

// ListItems handles listing menu items with filtering and pagination
func (h *MenuHandler) ListItems(c *gin.Context) {
	var filter request.MenuItemFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.MenuItemFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:        filter.Search,
		AvailableOnly: filter.AvailableOnly,
		SortBy:        filter.SortBy,
		SortOrder:     filter.SortOrder,
	}
	params.Pagination.Validate()

	if filter.CategoryID != "" {
		if categoryID, err := uuid.Parse(filter.CategoryID); err == nil {
			params.CategoryID = &categoryID
		}
	}

	items, total, err := h.menuService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(items,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// CreateItem handles creating a menu item
func (h *MenuHandler) CreateItem(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	if tenantID == uuid.Nil {
		response.BadRequest(c, "No active tenant")
		return
	}

	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	ingredients := make([]service.IngredientInput, len(req.Ingredients))
	for i, in := range req.Ingredients {
		ingredients[i] = service.IngredientInput{
			Name:      in.Name,
			Removable: in.Removable,
		}
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		TenantID:    tenantID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Price:       req.Price,
		Available:   req.Available,
		Ingredients: ingredients,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// GetItem handles getting a single menu item with its ingredients
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// UpdateItem handles updating a menu item
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdateItemInput{
		ID:         id,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Available:  req.Available,
	}
	if req.Ingredients != nil {
		ingredients := make([]service.IngredientInput, len(*req.Ingredients))
		for i, in := range *req.Ingredients {
			ingredients[i] = service.IngredientInput{
				Name:      in.Name,
				Removable: in.Removable,
			}
		}
		input.Ingredients = &ingredients
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// DeleteItem handles deleting a menu item
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted successfully", nil)
}

// SetAvailability handles toggling a menu item's availability
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.SetItemAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item availability updated", item)
}
