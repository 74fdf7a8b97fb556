package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	catalog Catalog
}

func NewHealthHandler(catalog Catalog) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// Check probes the store and reports 503 when it cannot be reached.
func (h *HealthHandler) Check(c *gin.Context) {
	result := h.catalog.TestConnection(c.Request.Context())

	status := http.StatusOK
	state := "healthy"
	if !result.Success {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":    state,
		"store":     result,
		"timestamp": time.Now().UTC(),
	})
}
