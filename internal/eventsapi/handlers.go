package eventsapi

import (
	"strconv"
	"strings"

	"webhookrepo/internal/errmsg"
	"webhookrepo/internal/eventstore"
	"webhookrepo/internal/metrics"
	"webhookrepo/internal/utils"
	"webhookrepo/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Handler struct {
	store   eventstore.Gateway
	hub     *ws.Hub
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHandler builds the read API. hub and m may be nil.
func NewHandler(store eventstore.Gateway, hub *ws.Hub, m *metrics.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		store:   store,
		hub:     hub,
		metrics: m,
		logger:  logger,
	}
}

// listEventsHandler returns the latest events, newest first.
// @Summary List recent events
// @Description Returns at most 50 event records ordered by ingestion time, newest first.
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum number of records (1-50)" default(50)
// @Success 200 {array} models.EventRecord
// @Failure 500 {object} errmsg._InternalServerError
// @Router /api/events [get]
func (h *Handler) listEventsHandler(c fiber.Ctx) error {
	limit := eventstore.MaxListLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = eventstore.ClampLimit(n)
		}
	}

	records, err := h.store.ListRecent(c, limit)
	if err != nil {
		h.logger.Error("failed to list events", zap.Error(err))
		h.metrics.ListRequest("error")
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	h.metrics.ListRequest("ok")

	return c.JSON(records)
}
