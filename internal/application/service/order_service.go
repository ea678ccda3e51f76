package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	infraRepo "github.com/nepdine/dinepos-api/internal/infrastructure/repository"
	"github.com/nepdine/dinepos-api/pkg/apperror"
	"github.com/nepdine/dinepos-api/pkg/utils"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	menuItemRepo  repository.MenuItemRepository
	groupRepo     repository.GroupRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	menuItemRepo repository.MenuItemRepository,
	groupRepo repository.GroupRepository,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		menuItemRepo:  menuItemRepo,
		groupRepo:     groupRepo,
	}
}

// OrderItemInput represents an item in an order
type OrderItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
	Notes      string
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	GroupID  uuid.UUID
	WaiterID uuid.UUID
	Items    []OrderItemInput
}

// CreateOrder creates a new order for an open group. Item names and
// rates are snapshotted from the menu so later price edits don't
// change what was ordered.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one item")
	}

	group, err := s.groupRepo.GetByID(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Group")
	}
	if group.Status != enum.GroupStatusOpen {
		return nil, apperror.NewConflictError("Group is not open for new orders")
	}

	// Batch fetch all menu items in one query (prevents N+1)
	itemIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		itemIDs[i] = item.MenuItemID
	}
	menuItems, err := s.menuItemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	menuByID := make(map[uuid.UUID]entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		menuByID[m.ID] = m
	}

	now := time.Now()
	seq, err := s.orderRepo.CountToday(ctx, now)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		TenantID: tenantID,
		GroupID:  input.GroupID,
		WaiterID: input.WaiterID,
		KOTNo:    utils.GenerateKOTNo(now, seq+1),
		Status:   enum.OrderStatusPlaced,
	}

	var subTotal int64
	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		menuItem, found := menuByID[in.MenuItemID]
		if !found {
			return nil, apperror.NewNotFoundError("Menu item")
		}
		if !menuItem.Available {
			return nil, apperror.NewConflictError("Menu item is not available: " + menuItem.Name)
		}
		if in.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be positive")
		}

		amount := menuItem.Price * int64(in.Quantity)
		subTotal += amount
		items = append(items, entity.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   in.Quantity,
			Rate:       menuItem.Price,
			Amount:     amount,
			Notes:      in.Notes,
		})
	}
	order.SubTotal = subTotal

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders retrieves orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}

// UpdateOrderStatus advances an order through its kitchen lifecycle
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewConflictError("Order is cancelled")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

// CancelOrder marks an order cancelled so it drops out of billing
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusServed {
		return apperror.NewConflictError("Served orders cannot be cancelled")
	}
	return s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusCancelled)
}
