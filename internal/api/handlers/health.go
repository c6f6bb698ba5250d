package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-server/internal/version"
)

type HealthHandler struct {
	documentSink     string
	notificationSink string
}

// NewHealthHandler reports liveness plus which sinks this instance was
// configured with. Sink names are empty when disabled.
func NewHealthHandler(documentSink, notificationSink string) *HealthHandler {
	return &HealthHandler{
		documentSink:     documentSink,
		notificationSink: notificationSink,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"version":           version.Version,
		"document_sink":     h.documentSink,
		"notification_sink": h.notificationSink,
	})
}
