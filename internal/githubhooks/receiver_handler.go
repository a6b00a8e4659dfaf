package githubhooks

import (
	"errors"
	"strings"

	"webhookrepo/internal/errmsg"
	"webhookrepo/internal/events"
	"webhookrepo/internal/ingest"
	"webhookrepo/internal/utils"

	"github.com/gofiber/fiber/v3"
	fiberutils "github.com/gofiber/utils/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GitHub header keys read from every delivery.
const (
	eventHeader    = "X-GitHub-Event"
	deliveryHeader = "X-GitHub-Delivery"
)

// StatusResponse acknowledges a delivery.
type StatusResponse struct {
	Status string `json:"status" example:"success"`
}

// Handler serves webhook deliveries.
type Handler struct {
	dispatcher *ingest.Dispatcher
	audit      *events.Emitter
	logger     *zap.Logger
}

// NewHandler builds the receiver. audit may be nil.
func NewHandler(dispatcher *ingest.Dispatcher, audit *events.Emitter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		dispatcher: dispatcher,
		audit:      audit,
		logger:     logger,
	}
}

// receiverHandler normalizes a GitHub delivery into an event record.
// @Summary Receive a GitHub webhook
// @Description Accepts push and pull_request deliveries. Unhandled events and actions are acknowledged without storing anything, and storage failures never fail the delivery.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param X-GitHub-Event header string true "GitHub event name"
// @Param X-GitHub-Delivery header string false "GitHub delivery GUID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errmsg._WebhookEventMissing
// @Failure 500 {object} errmsg._InternalServerError
// @Router /webhook/receiver [post]
func (h *Handler) receiverHandler(c fiber.Ctx) error {
	// Both values outlive the request in audit entries and metric labels.
	eventType := fiberutils.CopyString(strings.TrimSpace(c.Get(eventHeader)))

	deliveryID := fiberutils.CopyString(strings.TrimSpace(c.Get(deliveryHeader)))
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	out, err := h.dispatcher.Dispatch(c, eventType, c.Body())
	if err != nil {
		h.audit.WebhookRejected(deliveryID, eventType, err)

		switch {
		case errors.Is(err, ingest.ErrMissingEventType):
			return utils.StatusError(c, errmsg.WebhookEventMissing)
		case errors.Is(err, ingest.ErrMalformedPayload):
			return utils.StatusError(c, errmsg.WebhookInvalidPayload)
		default:
			return utils.StatusError(c, errmsg.InternalServerError(err))
		}
	}

	h.audit.WebhookDelivered(deliveryID, out)

	h.logger.Debug("webhook delivery handled",
		zap.String("delivery", deliveryID),
		zap.String("event", out.EventType),
		zap.String("outcome", out.Result()),
	)

	return c.JSON(StatusResponse{Status: "success"})
}
