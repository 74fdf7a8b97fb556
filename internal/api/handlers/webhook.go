package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"storefront/internal/connectors/woocommerce"
	"storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

// WebhookReceiver handles a verified-or-not WooCommerce delivery.
type WebhookReceiver interface {
	HandleWebhook(ctx context.Context, topic string, payload []byte, signature string) error
}

type WebhookHandler struct {
	receiver WebhookReceiver
	logger   *logger.Logger
}

func NewWebhookHandler(receiver WebhookReceiver, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		receiver: receiver,
		logger:   logger,
	}
}

// WooCommerce disables a webhook after repeated non-2xx responses, so topics
// we do not handle are acknowledged rather than rejected.
func (h *WebhookHandler) WooCommerce(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read webhook body"})
		return
	}

	topic := c.GetHeader("X-WC-Webhook-Topic")
	signature := c.GetHeader("X-WC-Webhook-Signature")

	err = h.receiver.HandleWebhook(c.Request.Context(), topic, payload, signature)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Webhook processed"})
	case errors.Is(err, woocommerce.ErrInvalidSignature):
		h.logger.Warn("Rejected WooCommerce webhook %q: invalid signature", topic)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
	case errors.Is(err, woocommerce.ErrUnsupportedTopic):
		h.logger.Debug("Ignoring WooCommerce webhook %q", topic)
		c.JSON(http.StatusOK, gin.H{"message": "Webhook ignored"})
	case errors.Is(err, woocommerce.ErrInvalidPayload):
		h.logger.Warn("Rejected WooCommerce webhook %q: %v", topic, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Failed to process WooCommerce webhook %q: %v", topic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
	}
}
