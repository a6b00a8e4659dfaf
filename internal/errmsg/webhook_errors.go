package errmsg

import "net/http"

// Webhook receiver StatusErrors surfaced to the delivering provider.
var (
	WebhookEventMissing   = NewStatusError(http.StatusBadRequest, "No event type found")
	WebhookInvalidPayload = NewStatusError(http.StatusBadRequest, "Invalid JSON payload")
)

type _WebhookEventMissing struct {
	Error string `json:"error" example:"No event type found"`
}

type _WebhookInvalidPayload struct {
	Error string `json:"error" example:"Invalid JSON payload"`
}
