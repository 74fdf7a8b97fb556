package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(
	cfg *config.Config,
	logger *logger.Logger,
	reg *metrics.Registry,
	catalog handlers.Catalog,
	webhooks handlers.WebhookReceiver,
	syncPublisher events.Publisher,
) *Server {
	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger("/health", "/metrics"))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.Metrics(reg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(catalog)
	productHandler := handlers.NewProductHandler(catalog, logger)
	categoryHandler := handlers.NewCategoryHandler(catalog, logger)
	homeHandler := handlers.NewHomeHandler(catalog, logger)
	webhookHandler := handlers.NewWebhookHandler(webhooks, logger)
	syncHandler := handlers.NewSyncHandler(syncPublisher, logger)

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(reg.Handler()))

	// Routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/home", homeHandler.Get)

		// Products
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/featured", productHandler.Featured)
			products.GET("/best-selling", productHandler.BestSelling)
			products.GET("/new", productHandler.New)
			products.GET("/slug/:slug", productHandler.GetBySlug)
			products.GET("/:id", productHandler.Get)
			products.GET("/:id/reviews", productHandler.Reviews)
		}

		// Categories
		v1.GET("/categories", categoryHandler.List)

		// WooCommerce integration
		v1.POST("/woocommerce/webhook", webhookHandler.WooCommerce)
		v1.POST("/sync", syncHandler.Trigger)
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
		WriteTimeout: 45 * time.Second, // upstream calls may take up to 30s
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router exposes the engine for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}
