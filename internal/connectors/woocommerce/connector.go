package woocommerce

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/models"
	wooapi "storefront/internal/services/woocommerce"
	"storefront/internal/worker/processors/validation"
)

const (
	defaultSyncPageSize = 50
	maxSyncPageSize     = 100 // WooCommerce caps per_page at 100
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUnsupportedTopic = errors.New("unsupported webhook topic")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
)

// Catalog is the part of the WooCommerce client the connector needs.
type Catalog interface {
	ListProductsPaged(ctx context.Context, filters wooapi.ProductFilters) (*models.ProductPage, error)
}

type WooCommerceConnector struct {
	config    *config.Config
	logger    *logger.Logger
	catalog   Catalog
	publisher events.Publisher
	validator *validation.Validator
	metrics   *metrics.Registry
}

func New(cfg *config.Config, logger *logger.Logger, catalog Catalog, publisher events.Publisher, metrics *metrics.Registry) *WooCommerceConnector {
	return &WooCommerceConnector{
		config:    cfg,
		logger:    logger,
		catalog:   catalog,
		publisher: publisher,
		validator: validation.New(logger),
		metrics:   metrics,
	}
}

type SyncResult struct {
	Pages     int           `json:"pages"`
	Published int           `json:"published"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
}

// SyncProducts walks every page of published products and emits one
// product.synced event per valid product. The first failed fetch or publish
// aborts the run.
func (wc *WooCommerceConnector) SyncProducts(ctx context.Context) (*SyncResult, error) {
	start := time.Now()
	result := &SyncResult{}

	wc.logger.Info("Syncing products from WooCommerce store: %s", wc.config.WordPressAPIURL)

	pageSize := wc.pageSize()
	for page := 1; ; page++ {
		batch, err := wc.catalog.ListProductsPaged(ctx, wooapi.ProductFilters{
			PerPage: pageSize,
			Page:    page,
			OrderBy: "id",
			Order:   wooapi.OrderAsc,
		})
		if err != nil {
			wc.metrics.SyncRuns.WithLabelValues("error").Inc()
			return result, fmt.Errorf("failed to fetch products page %d: %w", page, err)
		}

		pending := make([]events.Event, 0, len(batch.Products))
		for i := range batch.Products {
			product := &batch.Products[i]
			if err := wc.validator.ValidateProduct(product); err != nil {
				wc.logger.Warn("Skipping product %d: %v", product.ID, err)
				result.Skipped++
				wc.metrics.SkippedProducts.Inc()
				continue
			}
			pending = append(pending, wc.newEvent(events.TypeProductSynced, product.ID, product, "sync"))
		}

		if err := wc.publisher.Publish(ctx, pending...); err != nil {
			wc.metrics.SyncRuns.WithLabelValues("error").Inc()
			return result, fmt.Errorf("failed to publish products page %d: %w", page, err)
		}

		result.Pages++
		result.Published += len(pending)
		wc.metrics.SyncedProducts.Add(float64(len(pending)))

		if page >= batch.TotalPages || len(batch.Products) == 0 {
			break
		}
	}

	result.Duration = time.Since(start)
	wc.metrics.SyncRuns.WithLabelValues("success").Inc()
	wc.logger.Info("WooCommerce sync completed: %d pages, %d published, %d skipped in %s",
		result.Pages, result.Published, result.Skipped, result.Duration)

	return result, nil
}

// HandleWebhook processes a WooCommerce webhook delivery. topic is the
// X-WC-Webhook-Topic header and signature the X-WC-Webhook-Signature header.
func (wc *WooCommerceConnector) HandleWebhook(ctx context.Context, topic string, payload []byte, signature string) error {
	// WooCommerce pings a new webhook URL with an unsigned "webhook_id=N"
	// body and no topic, and only saves the webhook on a 200.
	if topic == "" {
		wc.logger.Debug("Received WooCommerce webhook ping")
		wc.metrics.WebhookEvents.WithLabelValues("ping", "processed").Inc()
		return nil
	}

	if wc.config.WebhookSecret != "" && !VerifySignature(payload, signature, wc.config.WebhookSecret) {
		wc.metrics.WebhookEvents.WithLabelValues(topic, "rejected").Inc()
		return ErrInvalidSignature
	}

	err := wc.handleTopic(ctx, topic, payload)

	outcome := "processed"
	if err != nil {
		outcome = "error"
	}
	wc.metrics.WebhookEvents.WithLabelValues(topic, outcome).Inc()
	return err
}

func (wc *WooCommerceConnector) handleTopic(ctx context.Context, topic string, payload []byte) error {
	switch topic {
	case "product.created", "product.updated", "product.restored":
		product, err := wooapi.DecodeProduct(payload)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if err := wc.validator.ValidateProduct(product); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}

		eventType := events.TypeProductUpdated
		if topic == "product.created" {
			eventType = events.TypeProductCreated
		}
		wc.logger.Debug("Received WooCommerce webhook %s for product %d", topic, product.ID)
		return wc.publisher.Publish(ctx, wc.newEvent(eventType, product.ID, product, "webhook"))

	case "product.deleted":
		var deleted struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(payload, &deleted); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if deleted.ID == 0 {
			return fmt.Errorf("%w: no product id", ErrInvalidPayload)
		}
		wc.logger.Debug("Received WooCommerce webhook %s for product %d", topic, deleted.ID)
		return wc.publisher.Publish(ctx, wc.newEvent(events.TypeProductDeleted, deleted.ID, nil, "webhook"))
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedTopic, topic)
}

func (wc *WooCommerceConnector) newEvent(eventType events.Type, productID int, product *models.Product, source string) events.Event {
	event := events.New(eventType, productID, product)
	event.Source = source
	return event
}

func (wc *WooCommerceConnector) pageSize() int {
	size := wc.config.SyncPageSize
	if size <= 0 {
		return defaultSyncPageSize
	}
	if size > maxSyncPageSize {
		return maxSyncPageSize
	}
	return size
}

// VerifySignature checks the base64 HMAC-SHA256 signature WooCommerce sends
// with every webhook delivery.
func VerifySignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
