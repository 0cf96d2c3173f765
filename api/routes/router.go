// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"musobuddy/internal/auth"
	"musobuddy/internal/bookings"
	"musobuddy/internal/clients"
	"musobuddy/internal/contracts"
	"musobuddy/internal/invoices"
	"musobuddy/internal/notifications"
	"musobuddy/internal/shared/config"
	"musobuddy/internal/shared/database"
	"musobuddy/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config              *config.Config
	db                  *database.DB
	notificationService notifications.NotificationService

	// Shared across route groups
	notifier       *notifications.DomainNotifierAdapter
	bookingService bookings.Service
	invoiceService invoices.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notificationService notifications.NotificationService) *Router {
	return &Router{
		config:              cfg,
		db:                  db,
		notificationService: notificationService,
	}
}

// InvoiceService exposes the wired invoice service for background jobs
func (r *Router) InvoiceService() invoices.Service {
	return r.invoiceService
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Auth routes also provide the recipient directory the notifier needs
		authRepo := r.setupAuthRoutes(api)

		// Domain events fan out to email through the notification pipeline
		directory := auth.NewUserDirectoryAdapter(authRepo)
		r.notifier = notifications.NewDomainNotifierAdapter(r.notificationService, directory, r.config.PublicBaseURL)

		r.setupBookingRoutes(api)
		r.setupClientRoutes(api)
		r.setupContractRoutes(api)
		r.setupInvoiceRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "musobuddy-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "musobuddy-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes and returns the user
// repository so other groups can resolve notification recipients
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) auth.Repository {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)

	return authRepo
}

// setupBookingRoutes configures the booking diary and conflict scan routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	cacheService := cache.NewService(r.db.GetRedisClient())
	bookingService := bookings.NewService(bookingRepo, cacheService, r.notifier)
	bookingController := bookings.NewController(bookingService)

	// Contracts and invoices resolve their linked bookings through this service
	r.bookingService = bookingService

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupClientRoutes configures the client address book routes
func (r *Router) setupClientRoutes(rg *gin.RouterGroup) {
	clientRepo := clients.NewRepository(r.db.GetPostgreSQL())
	clientService := clients.NewService(clientRepo)
	clientController := clients.NewController(clientService)

	clients.SetupClientRoutes(rg, clientController)
}

// setupContractRoutes configures contract drafting and e-signing routes
func (r *Router) setupContractRoutes(rg *gin.RouterGroup) {
	contractRepo := contracts.NewRepository(r.db.GetPostgreSQL())
	contractService := contracts.NewService(contractRepo, r.bookingService, r.notifier)
	contractController := contracts.NewController(contractService)

	contracts.SetupContractRoutes(rg, contractController)
}

// setupInvoiceRoutes configures invoicing routes
func (r *Router) setupInvoiceRoutes(rg *gin.RouterGroup) {
	invoiceRepo := invoices.NewRepository(r.db.GetPostgreSQL())
	invoiceService := invoices.NewService(invoiceRepo, r.bookingService, r.notifier)
	invoiceController := invoices.NewController(invoiceService)

	// Kept for the overdue sweep job wired up in main
	r.invoiceService = invoiceService

	invoices.SetupInvoiceRoutes(rg, invoiceController)
}
