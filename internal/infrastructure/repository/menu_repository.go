package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	domainRepo "github.com/nepdine/dinepos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type menuCategoryRepository struct {
	db *gorm.DB
}

// NewMenuCategoryRepository creates a new menu category repository
func NewMenuCategoryRepository(db *gorm.DB) domainRepo.MenuCategoryRepository {
	return &menuCategoryRepository{db: db}
}

func (r *menuCategoryRepository) Create(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error) {
	var category entity.MenuCategory
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *menuCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.MenuCategory, error) {
	var category entity.MenuCategory
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&category, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *menuCategoryRepository) Update(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *menuCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuCategory{}, "id = ?", id).Error
}

func (r *menuCategoryRepository) List(ctx context.Context) ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Category").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) GetBySlug(ctx context.Context, slug string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&item, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuItem{}, "id = ?", id).Error
}

func (r *menuItemRepository) List(ctx context.Context, params *domainRepo.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	var items []entity.MenuItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MenuItem{}).Scopes(TenantScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.AvailableOnly {
		query = query.Where("available = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "name"
	sortOrder := "ASC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").
		Order(sortBy + " " + sortOrder).
		Find(&items).Error

	return items, total, err
}

func (r *menuItemRepository) GetWithIngredients(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Category").
		Preload("Ingredients").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) domainRepo.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Ingredient{}, "id = ?", id).Error
}

// ReplaceForItem swaps out the full ingredient list of a menu item in one transaction
func (r *ingredientRepository) ReplaceForItem(ctx context.Context, menuItemID uuid.UUID, ingredients []entity.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Ingredient{}, "menu_item_id = ?", menuItemID).Error; err != nil {
			return err
		}
		if len(ingredients) == 0 {
			return nil
		}
		for i := range ingredients {
			ingredients[i].MenuItemID = menuItemID
		}
		return tx.Create(&ingredients).Error
	})
}

func (r *ingredientRepository) ListByItem(ctx context.Context, menuItemID uuid.UUID) ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Order("name ASC").
		Find(&ingredients).Error
	return ingredients, err
}
