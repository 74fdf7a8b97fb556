package processors

import (
	"context"
	"fmt"

	"storefront/internal/connectors/woocommerce"
	"storefront/internal/events"
	"storefront/internal/logger"
)

// Syncer runs a full catalog sync.
type Syncer interface {
	SyncProducts(ctx context.Context) (*woocommerce.SyncResult, error)
}

type EventProcessor struct {
	logger *logger.Logger
	syncer Syncer
}

func NewEventProcessor(logger *logger.Logger, syncer Syncer) *EventProcessor {
	return &EventProcessor{
		logger: logger,
		syncer: syncer,
	}
}

// Process handles one event from the sync-request topic. Only
// sync.requested triggers work; product events are ignored here.
func (ep *EventProcessor) Process(ctx context.Context, event events.Event) error {
	ep.logger.Debug("Processing event %s (%s)", event.ID, event.Type)

	switch event.Type {
	case events.TypeSyncRequested:
		result, err := ep.syncer.SyncProducts(ctx)
		if err != nil {
			return fmt.Errorf("catalog sync failed: %w", err)
		}
		ep.logger.Info("Sync requested by %s published %d products", sourceOf(event), result.Published)
		return nil

	case events.TypeProductSynced, events.TypeProductCreated, events.TypeProductUpdated, events.TypeProductDeleted:
		ep.logger.Debug("Ignoring %s event for product %d", event.Type, event.ProductID)
		return nil
	}

	return fmt.Errorf("unknown event type %q", event.Type)
}

func sourceOf(event events.Event) string {
	if event.Source == "" {
		return "unknown"
	}
	return event.Source
}
