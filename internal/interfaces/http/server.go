// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/config"
	"github.com/your-org/shopfront/internal/domain/admin"
	"github.com/your-org/shopfront/internal/domain/cart"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/domain/checkout"
	"github.com/your-org/shopfront/internal/domain/order"
	"github.com/your-org/shopfront/internal/domain/wishlist"
	"github.com/your-org/shopfront/internal/interfaces/http/handlers"
	"github.com/your-org/shopfront/internal/interfaces/http/middleware"
	"github.com/your-org/shopfront/internal/interfaces/http/routes"
	"github.com/your-org/shopfront/internal/pkg/auth"
)

// Dependencies are the stores and services the server exposes
type Dependencies struct {
	Catalog  *catalog.Catalog
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Orders   *order.Store
	Admin    *admin.Store
	Checkout *checkout.Service
	Invoices handlers.InvoiceGenerator

	// RateCounter enables rate limiting when set
	RateCounter middleware.HitCounter
	// Health reports the state of external services for /health
	Health func(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	deps       Dependencies
	logger     *logrus.Logger
	gin        *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer creates a new HTTP server instance with its routes registered
func NewServer(cfg *config.Config, deps Dependencies, logger *logrus.Logger) *Server {
	s := &Server{
		config:    cfg,
		deps:      deps,
		logger:    logger,
		gin:       gin.New(),
		startedAt: time.Now(),
	}

	if len(cfg.Security.TrustedProxies) > 0 {
		if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			logger.WithError(err).Warn("Ignoring invalid trusted proxies")
		}
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler returns the request handler
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithFields(logrus.Fields{
		"port":     s.config.Server.Port,
		"base_url": fmt.Sprintf("http://localhost:%s/api/v1", s.config.Server.Port),
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.CORS(s.config.Security))
	s.gin.Use(middleware.SecurityHeaders(s.config.App.Name))

	if s.deps.RateCounter != nil {
		s.gin.Use(middleware.RateLimit(s.config.Security, s.deps.RateCounter, s.logger))
	}

	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	tokens := auth.NewJWTManager(s.config)
	h := routes.Handlers{
		Catalog:  handlers.NewCatalogHandler(s.deps.Catalog),
		Cart:     handlers.NewCartHandler(s.deps.Cart, s.deps.Catalog),
		Wishlist: handlers.NewWishlistHandler(s.deps.Wishlist, s.deps.Catalog),
		Checkout: handlers.NewCheckoutHandler(s.deps.Checkout),
		Orders:   handlers.NewOrderHandler(s.deps.Orders, s.deps.Invoices, s.logger),
		Admin:    handlers.NewAdminHandler(s.deps.Admin, s.deps.Orders),
		Auth:     handlers.NewAuthHandler(auth.NewAdminAuthenticator(s.config, tokens), s.logger),
	}

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, h, tokens)

	s.gin.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	if s.deps.Health != nil {
		if err := s.deps.Health(c.Request.Context()); err != nil {
			s.logger.WithError(err).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "dependency check failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
		"products":  len(s.deps.Catalog.Products()),
	})
}
