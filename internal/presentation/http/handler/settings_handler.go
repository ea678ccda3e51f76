package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nepdine/dinepos-api/internal/application/service"
	"github.com/nepdine/dinepos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves user settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates user settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Language           string `json:"language"`
		Timezone           string `json:"timezone"`
		DateFormat         string `json:"date_format"`
		EmailNotifications bool   `json:"email_notifications"`
		OrderAlerts        bool   `json:"order_alerts"`
		KitchenAlerts      bool   `json:"kitchen_alerts"`
		ShiftSummaryEmails bool   `json:"shift_summary_emails"`
		Theme              string `json:"theme"`
		CompactMode        bool   `json:"compact_mode"`
		SessionTimeout     string `json:"session_timeout"`
		LoginAlerts        bool   `json:"login_alerts"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID:             *userID,
		Language:           req.Language,
		Timezone:           req.Timezone,
		DateFormat:         req.DateFormat,
		EmailNotifications: req.EmailNotifications,
		OrderAlerts:        req.OrderAlerts,
		KitchenAlerts:      req.KitchenAlerts,
		ShiftSummaryEmails: req.ShiftSummaryEmails,
		Theme:              req.Theme,
		CompactMode:        req.CompactMode,
		SessionTimeout:     req.SessionTimeout,
		LoginAlerts:        req.LoginAlerts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
