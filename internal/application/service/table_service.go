package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	"github.com/nepdine/dinepos-api/pkg/apperror"
)

// TableService handles dining table operations
type TableService struct {
	tableRepo  repository.TableRepository
	tenantRepo repository.TenantRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, tenantRepo repository.TenantRepository) *TableService {
	return &TableService{tableRepo: tableRepo, tenantRepo: tenantRepo}
}

// CreateTableInput represents input for creating a dining table
type CreateTableInput struct {
	TenantID uuid.UUID
	Capacity int
}

// CreateTable adds a table with the next sequential number. The
// tenant's plan caps how many tables it can have.
func (s *TableService) CreateTable(ctx context.Context, input *CreateTableInput) (*entity.DiningTable, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}

	if max := tenant.Plan.MaxTables(); max > 0 {
		count, err := s.tableRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count >= int64(max) {
			return nil, apperror.NewConflictError("Table limit reached for current plan")
		}
	}

	maxNumber, err := s.tableRepo.MaxNumber(ctx)
	if err != nil {
		return nil, err
	}

	capacity := input.Capacity
	if capacity <= 0 {
		capacity = 4
	}

	table := &entity.DiningTable{
		TenantID: input.TenantID,
		Number:   maxNumber + 1,
		Capacity: capacity,
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// GetTable retrieves a table by ID
func (s *TableService) GetTable(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// ListTables retrieves all tables for the tenant, ordered by number
func (s *TableService) ListTables(ctx context.Context) ([]entity.DiningTable, error) {
	return s.tableRepo.List(ctx)
}

// UpdateTableCapacity changes how many seats a table has
func (s *TableService) UpdateTableCapacity(ctx context.Context, id uuid.UUID, capacity int) (*entity.DiningTable, error) {
	if capacity <= 0 {
		return nil, apperror.NewBadRequestError("Capacity must be positive")
	}

	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	table.Capacity = capacity
	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// DeleteTable removes a table. Occupied tables cannot be deleted, and
// the remaining tables are renumbered to stay sequential.
func (s *TableService) DeleteTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if table == nil {
		return apperror.NewNotFoundError("Table")
	}
	if table.Occupied() {
		return apperror.NewConflictError("Table is occupied")
	}
	return s.tableRepo.Delete(ctx, id)
}
