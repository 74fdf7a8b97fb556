package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/connectors/woocommerce"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	wooapi "storefront/internal/services/woocommerce"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)
	if cfg.WordPressAPIURL == "" {
		logger.Warn("WORDPRESS_API_URL is not set, catalog requests will fail")
	}

	reg := metrics.NewRegistry()
	client := wooapi.NewClientFromConfig(cfg, logger, wooapi.WithTransport(reg.InstrumentTransport(nil)))

	productEvents := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.ProductEventTopic)
	defer productEvents.Close()
	syncRequests := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.SyncRequestTopic)
	defer syncRequests.Close()

	connector := woocommerce.New(cfg, logger, client, productEvents, reg)

	// Initialize API server
	server := api.New(cfg, logger, reg, client, connector, syncRequests)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}
}
