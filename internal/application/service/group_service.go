package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	"github.com/nepdine/dinepos-api/pkg/apperror"
)

// GroupService handles seating group operations
type GroupService struct {
	groupRepo repository.GroupRepository
	tableRepo repository.TableRepository
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo repository.GroupRepository, tableRepo repository.TableRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, tableRepo: tableRepo}
}

// OpenGroupInput represents input for opening a seating group
type OpenGroupInput struct {
	TenantID uuid.UUID
	Name     string
	TableIDs []uuid.UUID
}

// OpenGroup seats a new group on one or more free tables
func (s *GroupService) OpenGroup(ctx context.Context, input *OpenGroupInput) (*entity.Group, error) {
	if len(input.TableIDs) == 0 {
		return nil, apperror.NewBadRequestError("At least one table is required")
	}

	for _, tableID := range input.TableIDs {
		table, err := s.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewNotFoundError("Table")
		}
		if table.Occupied() {
			return nil, apperror.NewConflictError("Table is already occupied")
		}
	}

	group := &entity.Group{
		TenantID: input.TenantID,
		Name:     input.Name,
		Status:   enum.GroupStatusOpen,
		OpenedAt: time.Now(),
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	if err := s.tableRepo.AssignGroup(ctx, input.TableIDs, &group.ID); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

// GetGroup retrieves a group with its tables and orders
func (s *GroupService) GetGroup(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	group, err := s.groupRepo.GetWithOrders(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Group")
	}
	return group, nil
}

// ListGroups retrieves groups, optionally filtered by status
func (s *GroupService) ListGroups(ctx context.Context, status *enum.GroupStatus) ([]entity.Group, error) {
	return s.groupRepo.List(ctx, status)
}

// AddTables claims more tables for an open group
func (s *GroupService) AddTables(ctx context.Context, groupID uuid.UUID, tableIDs []uuid.UUID) (*entity.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Group")
	}
	if group.Status != enum.GroupStatusOpen {
		return nil, apperror.NewConflictError("Group is not open")
	}

	for _, tableID := range tableIDs {
		table, err := s.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewNotFoundError("Table")
		}
		if table.Occupied() {
			return nil, apperror.NewConflictError("Table is already occupied")
		}
	}

	if err := s.tableRepo.AssignGroup(ctx, tableIDs, &group.ID); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, groupID)
}

// CloseGroup settles out a group and frees its tables. Called by the
// billing flow after the bill is settled.
func (s *GroupService) CloseGroup(ctx context.Context, id uuid.UUID) error {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return apperror.NewNotFoundError("Group")
	}
	if group.Status == enum.GroupStatusSettled {
		return apperror.NewConflictError("Group is already settled")
	}

	tableIDs := make([]uuid.UUID, 0, len(group.Tables))
	for _, t := range group.Tables {
		tableIDs = append(tableIDs, t.ID)
	}
	if len(tableIDs) > 0 {
		if err := s.tableRepo.AssignGroup(ctx, tableIDs, nil); err != nil {
			return err
		}
	}

	now := time.Now()
	group.Status = enum.GroupStatusSettled
	group.ClosedAt = &now
	return s.groupRepo.Update(ctx, group)
}
