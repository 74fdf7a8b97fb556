package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
)

type Type string

const (
	TypeSyncRequested  Type = "sync.requested"
	TypeProductSynced  Type = "product.synced"
	TypeProductCreated Type = "product.created"
	TypeProductUpdated Type = "product.updated"
	TypeProductDeleted Type = "product.deleted"
)

// Event is the envelope published to Kafka for catalog changes and sync
// requests.
type Event struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	ProductID int             `json:"product_id,omitempty"`
	Product   *models.Product `json:"product,omitempty"`
	Source    string          `json:"source,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func New(eventType Type, productID int, product *models.Product) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		ProductID: productID,
		Product:   product,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher delivers events to a single destination.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}
