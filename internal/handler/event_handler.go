package handler

import (
	"net/http"

	"go-event-registration/internal/service"
	"go-event-registration/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.ListOpen)
	}
}

// ListOpen returns the open events as selector options. An empty list is a
// normal response; the form renders its "no events available" state.
func (h *EventHandler) ListOpen(c *gin.Context) {
	options, err := h.service.ListOpen(c)
	if err != nil {
		// the service already logged the cause; never leak it
		logger.WithComponent("handler").With(zap.String("operation", "ListOpen"), zap.Error(err)).Error("event listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load events."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": options})
}
