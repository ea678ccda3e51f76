package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	infraRepo "github.com/nepdine/dinepos-api/internal/infrastructure/repository"
	"github.com/nepdine/dinepos-api/pkg/apperror"
	"github.com/nepdine/dinepos-api/pkg/utils"
)

// BillingService handles checkout: computing totals for a group and
// settling the bill
type BillingService struct {
	billRepo   repository.BillRepository
	groupRepo  repository.GroupRepository
	orderRepo  repository.OrderRepository
	tableRepo  repository.TableRepository
	tenantRepo repository.TenantRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	groupRepo repository.GroupRepository,
	orderRepo repository.OrderRepository,
	tableRepo repository.TableRepository,
	tenantRepo repository.TenantRepository,
) *BillingService {
	return &BillingService{
		billRepo:   billRepo,
		groupRepo:  groupRepo,
		orderRepo:  orderRepo,
		tableRepo:  tableRepo,
		tenantRepo: tenantRepo,
	}
}

// CreateBillInput represents input for creating a bill
type CreateBillInput struct {
	GroupID uuid.UUID

	// Percent overrides. Nil means use the tenant default, a pointer
	// to zero means explicitly none.
	DiscountPercent      *float64
	ServiceChargePercent *float64
	VATPercent           *float64
}

// percentOf rounds a percentage of a paisa amount to whole paisa
func percentOf(amount int64, percent float64) int64 {
	return int64(math.Round(float64(amount) * percent / 100))
}

// CreateBill totals a group's live orders and writes the bill. Charges
// stack the usual way: discount off the subtotal, service charge on
// the discounted base, VAT on base plus service charge.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	group, err := s.groupRepo.GetByID(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Group")
	}
	if group.Status == enum.GroupStatusSettled {
		return nil, apperror.NewConflictError("Group is already settled")
	}

	existing, err := s.billRepo.GetByGroupID(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Group already has a bill")
	}

	orders, err := s.orderRepo.ListByGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	var subTotal int64
	for _, order := range orders {
		if order.Status == enum.OrderStatusCancelled {
			continue
		}
		subTotal += order.SubTotal
	}
	if subTotal == 0 {
		return nil, apperror.NewBadRequestError("Group has no billable orders")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}

	discountPct := 0.0
	if input.DiscountPercent != nil {
		discountPct = *input.DiscountPercent
	}
	servicePct := tenant.Settings.ServiceChargePercent
	if input.ServiceChargePercent != nil {
		servicePct = *input.ServiceChargePercent
	}
	vatPct := tenant.Settings.VATPercent
	if input.VATPercent != nil {
		vatPct = *input.VATPercent
	}
	if discountPct < 0 || discountPct > 100 || servicePct < 0 || vatPct < 0 {
		return nil, apperror.NewBadRequestError("Invalid percentage")
	}

	discount := percentOf(subTotal, discountPct)
	base := subTotal - discount
	service := percentOf(base, servicePct)
	tax := percentOf(base+service, vatPct)
	total := base + service + tax

	now := time.Now()
	seq, err := s.billRepo.CountToday(ctx, now)
	if err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		TenantID:      tenantID,
		GroupID:       input.GroupID,
		BillNo:        utils.GenerateBillNo(now, seq+1),
		SubTotal:      subTotal,
		Discount:      &discount,
		ServiceCharge: &service,
		Tax:           &tax,
		Total:         total,
	}
	if input.DiscountPercent == nil {
		bill.Discount = nil
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	if err := s.groupRepo.UpdateStatus(ctx, input.GroupID, enum.GroupStatusBilled); err != nil {
		return nil, err
	}

	return bill, nil
}

// GetBill retrieves a bill by ID
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills retrieves bills with filtering and pagination
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return s.billRepo.List(ctx, params)
}

// SettleBill records payment, settles the group and frees its tables
func (s *BillingService) SettleBill(ctx context.Context, id uuid.UUID, paymentMethod string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.Settled {
		return nil, apperror.NewConflictError("Bill is already settled")
	}

	now := time.Now()
	bill.Settled = true
	bill.SettledAt = &now
	bill.PaymentMethod = paymentMethod

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, bill.GroupID)
	if err != nil {
		return nil, err
	}
	if group != nil {
		tableIDs := make([]uuid.UUID, 0, len(group.Tables))
		for _, t := range group.Tables {
			tableIDs = append(tableIDs, t.ID)
		}
		if len(tableIDs) > 0 {
			if err := s.tableRepo.AssignGroup(ctx, tableIDs, nil); err != nil {
				return nil, err
			}
		}
		group.Status = enum.GroupStatusSettled
		group.ClosedAt = &now
		if err := s.groupRepo.Update(ctx, group); err != nil {
			return nil, err
		}
	}

	return bill, nil
}
