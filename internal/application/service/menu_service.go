package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	"github.com/nepdine/dinepos-api/pkg/apperror"
	"github.com/nepdine/dinepos-api/pkg/utils"
)

// MenuService handles menu category, item and ingredient operations
type MenuService struct {
	categoryRepo   repository.MenuCategoryRepository
	itemRepo       repository.MenuItemRepository
	ingredientRepo repository.IngredientRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	categoryRepo repository.MenuCategoryRepository,
	itemRepo repository.MenuItemRepository,
	ingredientRepo repository.IngredientRepository,
) *MenuService {
	return &MenuService{
		categoryRepo:   categoryRepo,
		itemRepo:       itemRepo,
		ingredientRepo: ingredientRepo,
	}
}

// CreateCategoryInput represents input for creating a menu category
type CreateCategoryInput struct {
	TenantID  uuid.UUID
	Name      string
	SortOrder int
}

// CreateCategory creates a new menu category
func (s *MenuService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.MenuCategory, error) {
	slug := utils.Slugify(input.Name)

	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.MenuCategory{
		TenantID:  input.TenantID,
		Name:      input.Name,
		Slug:      slug,
		SortOrder: input.SortOrder,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories retrieves all menu categories for the tenant
func (s *MenuService) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategoryInput represents input for updating a menu category
type UpdateCategoryInput struct {
	ID        uuid.UUID
	Name      string
	SortOrder *int
}

// UpdateCategory updates a menu category
func (s *MenuService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.MenuCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.Name != "" {
		category.Name = input.Name
		category.Slug = utils.Slugify(input.Name)
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a menu category
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// IngredientInput represents one ingredient on a menu item
type IngredientInput struct {
	Name      string
	Removable bool
}

// CreateItemInput represents input for creating a menu item
type CreateItemInput struct {
	TenantID    uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Price       float64 // rupees
	Available   *bool
	Ingredients []IngredientInput
}

// CreateItem creates a new menu item with its ingredients
func (s *MenuService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.MenuItem, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.itemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Menu item already exists")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	item := &entity.MenuItem{
		TenantID:   input.TenantID,
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Slug:       slug,
		Available:  true,
	}
	item.SetPriceFromDecimal(input.Price)
	if input.Available != nil {
		item.Available = *input.Available
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	if len(input.Ingredients) > 0 {
		ingredients := make([]entity.Ingredient, 0, len(input.Ingredients))
		for _, in := range input.Ingredients {
			ingredients = append(ingredients, entity.Ingredient{
				TenantID:  input.TenantID,
				Name:      in.Name,
				Removable: in.Removable,
			})
		}
		if err := s.ingredientRepo.ReplaceForItem(ctx, item.ID, ingredients); err != nil {
			return nil, err
		}
	}

	return s.itemRepo.GetWithIngredients(ctx, item.ID)
}

// GetItem retrieves a menu item with its ingredients
func (s *MenuService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.itemRepo.GetWithIngredients(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListItems retrieves menu items with filtering and pagination
func (s *MenuService) ListItems(ctx context.Context, params *repository.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	return s.itemRepo.List(ctx, params)
}

// UpdateItemInput represents input for updating a menu item
type UpdateItemInput struct {
	ID          uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Price       *float64 // rupees
	Available   *bool
	Ingredients *[]IngredientInput
}

// UpdateItem updates a menu item. Existing order lines keep their
// snapshot of the old name and price.
func (s *MenuService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != "" {
		item.Name = input.Name
		item.Slug = utils.Slugify(input.Name)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		item.CategoryID = input.CategoryID
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if input.Ingredients != nil {
		ingredients := make([]entity.Ingredient, 0, len(*input.Ingredients))
		for _, in := range *input.Ingredients {
			ingredients = append(ingredients, entity.Ingredient{
				TenantID:  item.TenantID,
				Name:      in.Name,
				Removable: in.Removable,
			})
		}
		if err := s.ingredientRepo.ReplaceForItem(ctx, item.ID, ingredients); err != nil {
			return nil, err
		}
	}

	return s.itemRepo.GetWithIngredients(ctx, item.ID)
}

// DeleteItem soft-deletes a menu item
func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.itemRepo.Delete(ctx, id)
}

// SetItemAvailability flips the available flag on a menu item
func (s *MenuService) SetItemAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item.Available = available
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
