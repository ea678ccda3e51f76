package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nepdine/dinepos-api/internal/config"
	domainRepo "github.com/nepdine/dinepos-api/internal/domain/repository"
	"github.com/nepdine/dinepos-api/internal/presentation/http/handler"
	"github.com/nepdine/dinepos-api/internal/presentation/http/middleware"
	"github.com/nepdine/dinepos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Tenant    *handler.TenantHandler
	Menu      *handler.MenuHandler
	Table     *handler.TableHandler
	Group     *handler.GroupHandler
	Order     *handler.OrderHandler
	Billing   *handler.BillingHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	TenantRepo      domainRepo.TenantRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.TenantMiddleware(deps.TenantRepo))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	protected.GET("/dashboard", middleware.RequirePermission("view-dashboard"), h.Dashboard.GetStats)

	// Tenants
	registerTenantRoutes(protected, h)

	// Menu
	registerMenuRoutes(protected, h)

	// Tables
	registerTableRoutes(protected, h)

	// Groups
	registerGroupRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Billing
	registerBillingRoutes(protected, h, deps)

	// Reports
	registerReportRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)

	// Super Admin routes
	registerAdminRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerTenantRoutes(protected *gin.RouterGroup, h *Handlers) {
	tenants := protected.Group("/tenants")
	{
		tenants.GET("", h.Tenant.ListTenants)
		tenants.GET("/current", h.Tenant.GetCurrentTenant)
		tenants.PUT("/current", h.Tenant.UpdateTenant)
		tenants.GET("/current/members", h.Tenant.ListMembers)
		tenants.POST("/current/members", h.Tenant.InviteMember)
		tenants.PUT("/current/members/:user_id", h.Tenant.UpdateMemberRole)
		tenants.DELETE("/current/members/:user_id", h.Tenant.RemoveMember)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	{
		// Reads are open to all staff so waiters can browse the menu
		menu.GET("/categories", h.Menu.ListCategories)
		menu.GET("/items", h.Menu.ListItems)
		menu.GET("/items/:id", h.Menu.GetItem)

		manage := menu.Group("")
		manage.Use(middleware.RequirePermission("manage-menu"))
		{
			manage.POST("/categories", h.Menu.CreateCategory)
			manage.PUT("/categories/:id", h.Menu.UpdateCategory)
			manage.DELETE("/categories/:id", h.Menu.DeleteCategory)
			manage.POST("/items", h.Menu.CreateItem)
			manage.PUT("/items/:id", h.Menu.UpdateItem)
			manage.DELETE("/items/:id", h.Menu.DeleteItem)
			manage.PUT("/items/:id/availability", h.Menu.SetAvailability)
		}
	}
}

func registerTableRoutes(protected *gin.RouterGroup, h *Handlers) {
	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.GET("/:id", h.Table.Get)

		manage := tables.Group("")
		manage.Use(middleware.RequirePermission("manage-tables"))
		{
			manage.POST("", h.Table.Create)
			manage.PUT("/:id", h.Table.Update)
			manage.DELETE("/:id", h.Table.Delete)
		}
	}
}

func registerGroupRoutes(protected *gin.RouterGroup, h *Handlers) {
	groups := protected.Group("/groups")
	groups.Use(middleware.RequirePermission("manage-orders"))
	{
		groups.GET("", h.Group.List)
		groups.POST("", h.Group.Open)
		groups.GET("/:id", h.Group.Get)
		groups.POST("/:id/tables", h.Group.AddTables)
		groups.POST("/:id/close", h.Group.Close)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("manage-orders"))
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicate KOTs
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}
}

func registerBillingRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := protected.Group("/bills")
	bills.Use(middleware.RequirePermission("manage-billing"))
	{
		bills.GET("", h.Billing.List)
		// Bill creation uses idempotency middleware to prevent duplicates
		bills.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Billing.Create)
		bills.GET("/:id", h.Billing.Get)
		bills.POST("/:id/settle", h.Billing.Settle)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission("view-reports"))
	{
		reports.GET("/waiters", h.Dashboard.GetWaiterPerformance)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole("super-admin"))
	{
		admin.GET("/tenants", h.Tenant.ListAllTenants)
		admin.POST("/tenants", h.Tenant.CreateTenant)
		admin.DELETE("/tenants/:id", h.Tenant.DeleteTenant)
		admin.PUT("/tenants/:id/subscription", h.Tenant.UpdateSubscription)
		admin.PUT("/tenants/:id/features", h.Tenant.UpdateFeatures)
		admin.POST("/tenants/assign-user", h.Tenant.AssignUserToTenant)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	printerGroup.Use(middleware.RequirePermission("print-receipts"))
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.GET("/bills/:id", h.Printer.PreviewBill)
		printerGroup.POST("/bills/:id/print", h.Printer.PrintBill)
		printerGroup.POST("/bills/:id/email", h.Printer.EmailBill)
		printerGroup.GET("/orders/:id", h.Printer.PreviewKOT)
		printerGroup.POST("/orders/:id/print", h.Printer.PrintKOT)
	}
}
