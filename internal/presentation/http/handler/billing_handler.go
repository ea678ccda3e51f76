package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/application/service"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	"github.com/nepdine/dinepos-api/internal/presentation/http/dto/response"
	"github.com/nepdine/dinepos-api/pkg/pagination"
)

// BillingHandler handles billing HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// List handles listing bills with filtering and pagination
func (h *BillingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	params.Pagination.Validate()

	if settledStr := c.Query("settled"); settledStr != "" {
		if settled, err := strconv.ParseBool(settledStr); err == nil {
			params.Settled = &settled
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	bills, total, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(bills,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Create handles generating a bill for a group
func (h *BillingHandler) Create(c *gin.Context) {
	var req struct {
		GroupID              uuid.UUID `json:"group_id" binding:"required"`
		DiscountPercent      *float64  `json:"discount_percent" binding:"omitempty,min=0,max=100"`
		ServiceChargePercent *float64  `json:"service_charge_percent" binding:"omitempty,min=0"`
		VATPercent           *float64  `json:"vat_percent" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		GroupID:              req.GroupID,
		DiscountPercent:      req.DiscountPercent,
		ServiceChargePercent: req.ServiceChargePercent,
		VATPercent:           req.VATPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles getting a single bill
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Settle handles recording payment for a bill
func (h *BillingHandler) Settle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req struct {
		PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card qr"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billingService.SettleBill(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill settled successfully", bill)
}
