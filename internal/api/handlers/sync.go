package handlers

import (
	"net/http"

	"storefront/internal/events"
	"storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

// SyncHandler queues a full catalog sync for the worker.
type SyncHandler struct {
	publisher events.Publisher
	logger    *logger.Logger
}

func NewSyncHandler(publisher events.Publisher, logger *logger.Logger) *SyncHandler {
	return &SyncHandler{
		publisher: publisher,
		logger:    logger,
	}
}

func (h *SyncHandler) Trigger(c *gin.Context) {
	event := events.New(events.TypeSyncRequested, 0, nil)
	event.Source = "api"

	if err := h.publisher.Publish(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to request catalog sync: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request sync"})
		return
	}

	h.logger.Info("Catalog sync requested (event %s)", event.ID)
	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Sync requested",
		"event_id": event.ID,
	})
}
