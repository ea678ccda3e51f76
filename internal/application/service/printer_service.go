package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/entity"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	infraRepo "github.com/nepdine/dinepos-api/internal/infrastructure/repository"
	"github.com/nepdine/dinepos-api/pkg/apperror"
	"github.com/nepdine/dinepos-api/pkg/email"
	"github.com/nepdine/dinepos-api/pkg/printer"
	"github.com/nepdine/dinepos-api/pkg/receipt"
)

// PrinterService renders bills and kitchen tickets and drives the
// thermal printer. Render methods return the laid-out document so
// callers can preview it or email it instead of printing.
type PrinterService struct {
	printer        printer.Printer
	billRepo       repository.BillRepository
	orderRepo      repository.OrderRepository
	groupRepo      repository.GroupRepository
	tenantRepo     repository.TenantRepository
	emailService   *email.EmailService
	printerType    string
	defaultProfile string
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	groupRepo repository.GroupRepository,
	tenantRepo repository.TenantRepository,
	emailService *email.EmailService,
	printerType string,
	defaultProfile string,
) *PrinterService {
	return &PrinterService{
		printer:        p,
		billRepo:       billRepo,
		orderRepo:      orderRepo,
		groupRepo:      groupRepo,
		tenantRepo:     tenantRepo,
		emailService:   emailService,
		printerType:    printerType,
		defaultProfile: defaultProfile,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "null" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// engineFor builds a layout engine from the tenant's printer profile,
// falling back to the server default
func (s *PrinterService) engineFor(tenant *entity.Tenant) *receipt.Engine {
	name := s.defaultProfile
	if tenant != nil && tenant.Settings.PrinterProfile != "" {
		name = tenant.Settings.PrinterProfile
	}
	return receipt.New(receipt.ProfileByName(name))
}

func (s *PrinterService) tenantFromCtx(ctx context.Context) (*entity.Tenant, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	return tenant, nil
}

// buildBillData flattens a bill and its group's live orders into the
// layout engine's input
func buildBillData(tenant *entity.Tenant, bill *entity.Bill, orders []entity.Order) receipt.BillData {
	data := receipt.BillData{
		RestaurantName:     tenant.Name,
		RestaurantLocation: tenant.Settings.Location,
		Date:               bill.CreatedAt.Format("02/01/2006 15:04"),
		SubTotal:           receipt.Amount(bill.SubTotal),
		Total:              bill.Total,
	}
	if bill.Discount != nil {
		data.Discount = receipt.Amount(*bill.Discount)
	}
	if bill.ServiceCharge != nil {
		data.ServiceCharge = receipt.Amount(*bill.ServiceCharge)
	}
	if bill.Tax != nil {
		data.Tax = receipt.Amount(*bill.Tax)
	}

	for _, order := range orders {
		if order.Status == enum.OrderStatusCancelled {
			continue
		}
		for _, item := range order.Items {
			data.Lines = append(data.Lines, receipt.OrderLine{
				Name:     item.Name,
				Quantity: item.Quantity,
				Rate:     item.Rate,
				Amount:   item.Amount,
			})
		}
	}

	return data
}

// RenderBill lays out a bill receipt without printing it
func (s *PrinterService) RenderBill(ctx context.Context, billID uuid.UUID) (*receipt.Document, error) {
	tenant, err := s.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	orders, err := s.orderRepo.ListByGroup(ctx, bill.GroupID)
	if err != nil {
		return nil, err
	}

	engine := s.engineFor(tenant)
	doc := engine.RenderBill(buildBillData(tenant, bill, orders))
	return doc, nil
}

// PrintBill renders a bill receipt and sends it to the printer
func (s *PrinterService) PrintBill(ctx context.Context, billID uuid.UUID) (*receipt.Document, error) {
	doc, err := s.RenderBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(doc.ESCPOS()); err != nil {
		log.Printf("Printer error (bill %s): %v", billID, err)
		return doc, fmt.Errorf("failed to print bill: %w", err)
	}

	return doc, nil
}

// EmailBill renders a bill receipt and emails it to a guest. Gated by
// the email-receipts feature flag.
func (s *PrinterService) EmailBill(ctx context.Context, billID uuid.UUID, toEmail string) (*receipt.Document, error) {
	tenant, err := s.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !tenant.Settings.Features.EnableEmailReceipts {
		return nil, apperror.ErrForbidden
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	doc, err := s.RenderBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	if err := s.emailService.SendBillReceiptEmail(toEmail, tenant.Name, bill.BillNo, doc.Text()); err != nil {
		return doc, fmt.Errorf("failed to email receipt: %w", err)
	}

	return doc, nil
}

// RenderKOT lays out a kitchen ticket for an order without printing it
func (s *PrinterService) RenderKOT(ctx context.Context, orderID uuid.UUID) (*receipt.Document, error) {
	tenant, err := s.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	ticket := receipt.KitchenTicket{
		RestaurantName: tenant.Name,
		KOTNo:          order.KOTNo,
		Date:           order.CreatedAt.Format("02/01/2006 15:04"),
	}

	group, err := s.groupRepo.GetByID(ctx, order.GroupID)
	if err != nil {
		return nil, err
	}
	if group != nil {
		ticket.GroupName = group.Name
	}

	for _, item := range order.Items {
		ticket.Items = append(ticket.Items, receipt.TicketItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	engine := s.engineFor(tenant)
	doc := engine.RenderTicket(ticket)
	return doc, nil
}

// PrintKOT renders a kitchen ticket and sends it to the printer
func (s *PrinterService) PrintKOT(ctx context.Context, orderID uuid.UUID) (*receipt.Document, error) {
	tenant, err := s.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !tenant.Settings.Features.EnableKOT {
		return nil, apperror.ErrForbidden
	}

	doc, err := s.RenderKOT(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(doc.ESCPOS()); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return doc, fmt.Errorf("failed to print kitchen ticket: %w", err)
	}

	return doc, nil
}

// TestPrint sends a sample receipt to the printer. Returns the layout
// so the handler can return it as JSON when the printer is disabled.
func (s *PrinterService) TestPrint() (*receipt.Document, error) {
	engine := receipt.New(receipt.ProfileByName(s.defaultProfile))
	doc := engine.RenderBill(receipt.BillData{
		RestaurantName:     "PRINTER TEST",
		RestaurantLocation: "Test Address",
		Date:               time.Now().Format("02/01/2006 15:04"),
		SubTotal:           receipt.Amount(2000),
		Total:              2000,
		Lines: []receipt.OrderLine{
			{Name: "Test Item 1", Quantity: 1, Rate: 1000, Amount: 1000},
			{Name: "Test Item 2", Quantity: 2, Rate: 500, Amount: 1000},
		},
	})

	if err := s.printer.Print(doc.ESCPOS()); err != nil {
		return doc, fmt.Errorf("test print failed: %w", err)
	}

	return doc, nil
}
