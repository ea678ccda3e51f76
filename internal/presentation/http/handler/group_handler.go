package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/application/service"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"github.com/nepdine/dinepos-api/internal/presentation/http/dto/response"
	"github.com/nepdine/dinepos-api/internal/presentation/http/middleware"
)

// GroupHandler handles seating group HTTP requests
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// List handles listing groups, optionally filtered by status
func (h *GroupHandler) List(c *gin.Context) {
	var status *enum.GroupStatus
	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			s := enum.GroupStatus(statusInt)
			status = &s
		}
	}

	groups, err := h.groupService.ListGroups(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Groups retrieved successfully", gin.H{
		"groups": groups,
	})
}

// Open handles seating a new group on one or more free tables
func (h *GroupHandler) Open(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	if tenantID == uuid.Nil {
		response.BadRequest(c, "No active tenant")
		return
	}

	var req struct {
		Name     string      `json:"name"`
		TableIDs []uuid.UUID `json:"table_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	group, err := h.groupService.OpenGroup(c.Request.Context(), &service.OpenGroupInput{
		TenantID: tenantID,
		Name:     req.Name,
		TableIDs: req.TableIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Group opened successfully", group)
}

// Get handles getting a group with its tables and orders
func (h *GroupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	group, err := h.groupService.GetGroup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Group retrieved successfully", group)
}

// AddTables handles claiming more tables for an open group
func (h *GroupHandler) AddTables(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	var req struct {
		TableIDs []uuid.UUID `json:"table_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	group, err := h.groupService.AddTables(c.Request.Context(), id, req.TableIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables added to group successfully", group)
}

// Close handles settling a group out and freeing its tables
func (h *GroupHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.groupService.CloseGroup(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Group closed successfully", nil)
}
