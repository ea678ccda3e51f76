package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/pkg/pagination"
)

// MenuCategoryRepository defines the interface for menu category data operations
type MenuCategoryRepository interface {
	Create(ctx context.Context, category *entity.MenuCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error)
	GetBySlug(ctx context.Context, slug string) (*entity.MenuCategory, error)
	Update(ctx context.Context, category *entity.MenuCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.MenuCategory, error)
}

// MenuItemFilterParams contains filtering parameters for menu item queries
type MenuItemFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	CategoryID    *uuid.UUID
	AvailableOnly bool
	SortBy        string
	SortOrder     string
}

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetBySlug(ctx context.Context, slug string) (*entity.MenuItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MenuItemFilterParams) ([]entity.MenuItem, int64, error)
	GetWithIngredients(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
}

// IngredientRepository defines the interface for ingredient data operations
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceForItem(ctx context.Context, menuItemID uuid.UUID, ingredients []entity.Ingredient) error
	ListByItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Ingredient, error)
}
