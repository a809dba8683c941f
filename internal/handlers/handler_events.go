package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/events"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
	"github.com/txnsuite/estate-reporting/internal/middleware"
)

// eventsHandler handles the event ingestion endpoint the external transport
// delivers envelopes to.
type eventsHandler struct {
	projectionService portssvc.ProjectionService
}

func newEventsHandler(ps portssvc.ProjectionService) *eventsHandler {
	return &eventsHandler{projectionService: ps}
}

// RegisterEventRoutes registers the ingestion endpoint on an estate-scoped group.
func RegisterEventRoutes(rg *gin.RouterGroup, projectionService portssvc.ProjectionService) {
	h := newEventsHandler(projectionService)
	rg.POST("/events", h.ingestEvent)
}

// ingestEvent accepts one event envelope and applies it to the read model.
//
// The status code is the transport's redelivery signal: 200 acknowledges the
// event (including absorbed duplicates and discarded conflicts), 400 rejects
// a malformed envelope or payload permanently, 500 asks for redelivery.
func (h *eventsHandler) ingestEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var env events.Envelope
	if err := c.ShouldBindJSON(&env); err != nil {
		logger.Warn("Invalid event envelope", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event envelope: eventId, eventType and payload are required"})
		return
	}

	logger = logger.With(
		slog.String("event_id", env.EventID.String()),
		slog.String("event_type", env.EventType),
	)

	if err := h.projectionService.Apply(c.Request.Context(), env); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Warn("Event rejected", slog.String("error", err.Error()))
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		logger.Error("Failed to apply event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted", "eventId": env.EventID})
}
