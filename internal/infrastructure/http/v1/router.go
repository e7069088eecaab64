// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	corenum "sellpoint/internal/core/ordernum"
	"sellpoint/internal/domain/auth"
	"sellpoint/internal/domain/order"
	"sellpoint/internal/domain/outlet"
	"sellpoint/internal/infrastructure/http/v1/handlers"
	"sellpoint/internal/infrastructure/http/v1/middleware"
	"sellpoint/internal/infrastructure/storage/postgres"
	"sellpoint/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks).
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation.
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints.
	AuthService *auth.Service

	// Generator allocates order numbers.
	Generator corenum.Generator

	// Diagnostics exposes numbering stats and format comparison.
	Diagnostics corenum.Diagnostics

	// OutletService manages the outlet directory.
	OutletService *outlet.Service

	// OrderService creates and reads orders.
	OrderService *order.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Public auth endpoints
		if cfg.AuthService != nil {
			authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
			v1.POST("/auth/login", authHandler.Login)
		}

		// Protected endpoints
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		// --- ORDER NUMBERS ---
		{
			handler := handlers.NewOrderNumberHandler(baseHandler, cfg.Generator, cfg.Diagnostics)
			numbers := protected.Group("/order-numbers")
			numbers.POST("/generate", handler.Generate)
			numbers.GET("/compare", handler.Compare)
			numbers.POST("/validate", handler.Validate)
		}

		orderHandler := handlers.NewOrderHandler(baseHandler, cfg.OrderService)

		// --- OUTLETS ---
		{
			handler := handlers.NewOutletHandler(baseHandler, cfg.OutletService, cfg.Diagnostics)

			outlets := protected.Group("/outlets")
			outlets.GET("", handler.List)
			outlets.POST("", middleware.RequireRole(auth.RoleAdmin), handler.Create)
			outlets.GET("/:id", handler.Get)
			outlets.GET("/:id/stats", handler.Stats)
			outlets.GET("/:id/orders", orderHandler.ListByOutlet)
		}

		// --- ORDERS ---
		{
			orders := protected.Group("/orders")
			orders.POST("", orderHandler.Create)
			orders.GET("/:number", orderHandler.GetByNumber)
		}
	}

	return router
}
