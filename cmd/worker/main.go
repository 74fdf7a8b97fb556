package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/connectors/woocommerce"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	wooapi "storefront/internal/services/woocommerce"
	"storefront/internal/worker"
	"storefront/internal/worker/processors"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	reg := metrics.NewRegistry()
	client := wooapi.NewClientFromConfig(cfg, logger, wooapi.WithTransport(reg.InstrumentTransport(nil)))

	productEvents := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.ProductEventTopic)
	defer productEvents.Close()

	connector := woocommerce.New(cfg, logger, client, productEvents, reg)
	processor := processors.NewEventProcessor(logger, connector)

	// Initialize worker
	w := worker.New(cfg, logger, processor)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start worker
	logger.Info("Starting worker...")
	if err := w.Start(ctx); err != nil {
		logger.Error("Worker failed: %v", err)
	}

	logger.Info("Shutting down worker...")
	w.Stop()
}
