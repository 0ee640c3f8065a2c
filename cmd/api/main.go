package main

import (
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/application/service"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/config"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/infrastructure/database"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/infrastructure/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/handler"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/routes"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/email"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/printer"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db, log); err != nil {
		log.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	clientRepo := repository.NewClientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	serviceRepo := repository.NewWorkshopServiceRepository(db)
	pieceRepo := repository.NewPieceRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

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

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo)
	checklistService := service.NewChecklistService(checklistRepo, appointmentRepo)
	catalogService := service.NewCatalogService(serviceRepo, pieceRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo, serviceRepo, pieceRepo, log)
	dashboardService := service.NewDashboardService(invoiceRepo, clientRepo, appointmentRepo, pieceRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize printer")
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, invoiceService, cfg.Printer.Type, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Client:      handler.NewClientHandler(clientService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Checklist:   handler.NewChecklistHandler(checklistService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Invoice:     handler.NewInvoiceHandler(invoiceService, printerService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Log:             log,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{
		"port": port,
		"env":  cfg.App.Env,
	}).Infof("Starting %s server", cfg.App.Name)

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
