package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nepdine/dinepos-api/internal/application/service"
	"github.com/nepdine/dinepos-api/internal/config"
	"github.com/nepdine/dinepos-api/internal/infrastructure/database"
	"github.com/nepdine/dinepos-api/internal/infrastructure/repository"
	"github.com/nepdine/dinepos-api/internal/presentation/http/handler"
	"github.com/nepdine/dinepos-api/internal/presentation/http/routes"
	"github.com/nepdine/dinepos-api/pkg/email"
	"github.com/nepdine/dinepos-api/pkg/oauth"
	"github.com/nepdine/dinepos-api/pkg/printer"
	"github.com/nepdine/dinepos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	menuCategoryRepo := repository.NewMenuCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	tableRepo := repository.NewTableRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	billRepo := repository.NewBillRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	tenantService := service.NewTenantService(tenantRepo)
	menuService := service.NewMenuService(menuCategoryRepo, menuItemRepo, ingredientRepo)
	tableService := service.NewTableService(tableRepo, tenantRepo)
	groupService := service.NewGroupService(groupRepo, tableRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, menuItemRepo, groupRepo)
	billingService := service.NewBillingService(billRepo, groupRepo, orderRepo, tableRepo, tenantRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, tableRepo, groupRepo, tenantRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(
		thermalPrinter,
		billRepo,
		orderRepo,
		groupRepo,
		tenantRepo,
		emailService,
		cfg.Printer.Type,
		cfg.Printer.Profile,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Tenant:    handler.NewTenantHandler(tenantService),
		Menu:      handler.NewMenuHandler(menuService),
		Table:     handler.NewTableHandler(tableService),
		Group:     handler.NewGroupHandler(groupService),
		Order:     handler.NewOrderHandler(orderService),
		Billing:   handler.NewBillingHandler(billingService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		TenantRepo:      tenantRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
