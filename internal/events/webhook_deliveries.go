package events

import (
	"webhookrepo/internal/ingest"
	"webhookrepo/internal/metrics"
	"webhookrepo/internal/models"
)

// Audit actions, one per delivery outcome.
const (
	ActionDeliveryStored   = "webhook.delivery.stored"
	ActionDeliveryIgnored  = "webhook.delivery.ignored"
	ActionDeliveryFailed   = "webhook.delivery.failed"
	ActionDeliveryRejected = "webhook.delivery.rejected"
)

// WebhookDelivered records how the dispatcher handled one delivery.
func (e *Emitter) WebhookDelivered(deliveryID string, out ingest.Outcome) {
	if e == nil {
		return
	}

	d := models.Delivery{
		DeliveryID: deliveryID,
		EventType:  out.EventType,
		Props:      map[string]any{},
	}

	if out.Record != nil {
		d.RecordType = out.Record.Type
		d.Props["message"] = out.Record.Message
	}

	switch out.Result() {
	case metrics.OutcomeStored:
		d.Action = ActionDeliveryStored
	case metrics.OutcomeFailed:
		d.Action = ActionDeliveryFailed
		d.Props["error"] = out.Err.Error()
	default:
		d.Action = ActionDeliveryIgnored
	}

	e.Emit(d)
}

// WebhookRejected records a delivery refused before dispatch.
func (e *Emitter) WebhookRejected(deliveryID, eventType string, reason error) {
	if e == nil {
		return
	}

	e.Emit(models.Delivery{
		Action:     ActionDeliveryRejected,
		DeliveryID: deliveryID,
		EventType:  eventType,
		Props: map[string]any{
			"error": reason.Error(),
		},
	})
}
