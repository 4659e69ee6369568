// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
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
	"github.com/your-org/shopfront/internal/infrastructure/redis"
	"github.com/your-org/shopfront/internal/interfaces/http"
	"github.com/your-org/shopfront/internal/pkg/logger"
	"github.com/your-org/shopfront/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting service")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the in-memory stores
	cat := catalog.NewSeededCatalog()
	cartStore := cart.NewStore(log)
	wishlistStore := wishlist.NewStore(log)
	orderStore := order.NewStore(log)
	adminStore, err := admin.NewStore(cat, orderStore, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create admin store")
	}

	deps := http.Dependencies{
		Catalog:  cat,
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Orders:   orderStore,
		Admin:    adminStore,
		Checkout: checkout.NewService(cartStore, orderStore, checkout.ShippingPolicy{
			FlatRate:      cfg.Shipping.FlatRate,
			FreeThreshold: cfg.Shipping.FreeThreshold,
		}, log),
		Invoices: pdf.NewService(cfg),
	}

	// Connect to Redis when rate limiting is configured
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = redis.NewConnection(cfg, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		deps.RateCounter = redisClient
		deps.Health = redisClient.Health
	} else {
		log.Warn("REDIS_HOST not set, rate limiting disabled")
	}

	if cfg.Admin.PasswordHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH not set, admin login disabled")
	}

	server := http.NewServer(cfg, deps, log)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	adminStore.Close()
	cartStore.Close()
	wishlistStore.Close()
	orderStore.Close()
	cat.Close()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis connection")
		}
	}

	log.Info("Server shutdown completed")
}
