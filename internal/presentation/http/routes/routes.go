package routes

import (
	"time"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/config"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
	domainRepo "github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/handler"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/presentation/http/middleware"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Client      *handler.ClientHandler
	Appointment *handler.AppointmentHandler
	Checklist   *handler.ChecklistHandler
	Catalog     *handler.CatalogHandler
	Invoice     *handler.InvoiceHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Log             *logrus.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
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

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
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
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Staff administration (admin only)
	adminOnly := middleware.RequireRole(enum.RoleAdmin)
	users := protected.Group("/users")
	{
		users.POST("", adminOnly, h.Auth.Register)
		users.GET("", adminOnly, h.User.List)
		users.GET("/:id", adminOnly, h.User.Get)
		users.PUT("/:id", adminOnly, h.User.Update)
		users.DELETE("/:id", adminOnly, h.User.Delete)
	}

	// Clients
	clients := protected.Group("/clients")
	{
		clients.POST("", h.Client.Create)
		clients.GET("", h.Client.List)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", adminOnly, h.Client.Delete)
		clients.POST("/:id/vehicles", h.Client.AddVehicle)
		clients.DELETE("/vehicles/:vehicleId", h.Client.DeleteVehicle)
		clients.GET("/:id/invoices", h.Invoice.ListByClient)
	}

	// Appointments
	appointments := protected.Group("/appointments")
	{
		appointments.POST("", h.Appointment.Create)
		appointments.GET("", h.Appointment.List)
		appointments.GET("/upcoming", h.Appointment.Upcoming)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.PUT("/:id", h.Appointment.Update)
		appointments.DELETE("/:id", h.Appointment.Delete)
		appointments.GET("/:id/checklists", h.Checklist.ListByAppointment)
	}

	// Vehicle checklists
	checklists := protected.Group("/checklists")
	{
		checklists.POST("", h.Checklist.Create)
		checklists.GET("/:id", h.Checklist.Get)
		checklists.PUT("/:id/items", h.Checklist.UpdateItems)
		checklists.POST("/:id/images", h.Checklist.AttachImage)
		checklists.DELETE("/:id", h.Checklist.Delete)
	}

	// Service catalog
	services := protected.Group("/services")
	{
		services.POST("", h.Catalog.CreateService)
		services.GET("", h.Catalog.ListServices)
		services.PUT("/:id", h.Catalog.UpdateService)
		services.DELETE("/:id", adminOnly, h.Catalog.DeleteService)
	}
	categories := protected.Group("/categories")
	{
		categories.POST("", h.Catalog.CreateCategory)
		categories.GET("", h.Catalog.ListCategories)
	}

	// Piece inventory
	pieces := protected.Group("/pieces")
	{
		pieces.POST("", h.Catalog.CreatePiece)
		pieces.GET("", h.Catalog.ListPieces)
		pieces.PUT("/:id", h.Catalog.UpdatePiece)
		pieces.DELETE("/:id", adminOnly, h.Catalog.DeletePiece)
	}

	// Invoices. Creation and replacement run under the idempotency
	// middleware so a retried request never bills twice.
	idem := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	invoices := protected.Group("/invoices")
	{
		invoices.POST("", idem, h.Invoice.Create)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/lines", h.Invoice.GetEditableLines)
		invoices.PUT("/:id", idem, h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/import", adminOnly, h.Invoice.ImportLegacy)
		invoices.POST("/:id/print", h.Invoice.Print)
		invoices.GET("/printer/status", h.Invoice.PrinterStatus)
	}
}
