package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/loyalty"
	"storefront/internal/orders"
	"storefront/internal/pricing"
	"storefront/internal/reviews"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

type Stores struct {
	Catalog *catalog.Catalog
	Pricer  *pricing.Calculator
	Orders  *orders.Store
	Reviews *reviews.Store
	Loyalty *loyalty.Program
}

func New(cfg *config.Config, logger *logger.Logger, stores Stores) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(stores.Catalog, stores.Pricer, logger)
	giftHandler := handlers.NewGiftHandler(cfg, stores.Catalog, stores.Pricer, logger)
	orderHandler := handlers.NewOrderHandler(stores.Orders, stores.Loyalty, logger)
	reviewHandler := handlers.NewReviewHandler(stores.Reviews, logger)

	// Routes
	v1 := router.Group("/api/v1")
	{
		// Products
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Bundles
		bundles := v1.Group("/bundles")
		{
			bundles.GET("", catalogHandler.ListBundles)
			bundles.GET("/:id", catalogHandler.GetBundle)
		}

		// Gift boxes
		gifts := v1.Group("/gifts")
		{
			gifts.GET("/options", giftHandler.Options)
			gifts.POST("/quote", giftHandler.Quote)
		}

		// Orders
		ordersGroup := v1.Group("/orders")
		{
			ordersGroup.GET("", orderHandler.List)
			ordersGroup.POST("", orderHandler.Create)
		}

		// Loyalty
		v1.GET("/loyalty/summary", orderHandler.LoyaltySummary)

		// Reviews
		reviewsGroup := v1.Group("/reviews")
		{
			reviewsGroup.GET("", reviewHandler.List)
			reviewsGroup.POST("", reviewHandler.Create)
			reviewsGroup.GET("/verified", reviewHandler.Verified)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router exposes the Gin router for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
