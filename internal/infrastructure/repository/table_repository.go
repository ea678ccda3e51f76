package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	domainRepo "github.com/nepdine/dinepos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new dining table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	var table entity.DiningTable
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Group").
		First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) GetByNumber(ctx context.Context, number int) (*entity.DiningTable, error) {
	var table entity.DiningTable
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&table, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) Update(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

// Delete removes a table and shifts higher numbers down by one so the
// sequence stays gapless
func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table entity.DiningTable
		if err := tx.Scopes(TenantScope(ctx)).First(&table, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&table).Error; err != nil {
			return err
		}
		return tx.Model(&entity.DiningTable{}).
			Scopes(TenantScope(ctx)).
			Where("number > ?", table.Number).
			UpdateColumn("number", gorm.Expr("number - 1")).Error
	})
}

func (r *tableRepository) List(ctx context.Context) ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Group").
		Order("number ASC").
		Find(&tables).Error
	return tables, err
}

func (r *tableRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.DiningTable{}).
		Scopes(TenantScope(ctx)).
		Count(&total).Error
	return total, err
}

func (r *tableRepository) MaxNumber(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entity.DiningTable{}).
		Scopes(TenantScope(ctx)).
		Select("MAX(number)").
		Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

func (r *tableRepository) AssignGroup(ctx context.Context, tableIDs []uuid.UUID, groupID *uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.DiningTable{}).
		Scopes(TenantScope(ctx)).
		Where("id IN ?", tableIDs).
		Update("group_id", groupID).Error
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new seating group repository
func NewGroupRepository(db *gorm.DB) domainRepo.GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Tables").
		First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &group, err
}

func (r *groupRepository) GetWithOrders(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Tables").
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("orders.created_at ASC")
		}).
		Preload("Orders.Items").
		Preload("Orders.Waiter").
		First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &group, err
}

func (r *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Group{}, "id = ?", id).Error
}

func (r *groupRepository) List(ctx context.Context, status *enum.GroupStatus) ([]entity.Group, error) {
	var groups []entity.Group
	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Preload("Tables")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("opened_at DESC").Find(&groups).Error
	return groups, err
}

func (r *groupRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.GroupStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Group{}).
		Where("id = ?", id).
		Update("status", status).Error
}
