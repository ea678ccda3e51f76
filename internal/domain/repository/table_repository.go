package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
)

// TableRepository defines the interface for dining table data operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.DiningTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error)
	GetByNumber(ctx context.Context, number int) (*entity.DiningTable, error)
	Update(ctx context.Context, table *entity.DiningTable) error

	// Delete removes a table and renumbers the remaining tables so
	// numbers stay sequential with no gaps
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context) ([]entity.DiningTable, error)
	Count(ctx context.Context) (int64, error)
	MaxNumber(ctx context.Context) (int, error)

	// AssignGroup sets or clears the occupying group for a set of tables
	AssignGroup(ctx context.Context, tableIDs []uuid.UUID, groupID *uuid.UUID) error
}

// GroupRepository defines the interface for seating group data operations
type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	GetWithOrders(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	Update(ctx context.Context, group *entity.Group) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *enum.GroupStatus) ([]entity.Group, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.GroupStatus) error
}
