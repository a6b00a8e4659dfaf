// Package eventsapi serves the recent events listing and live feed.
package eventsapi

import "github.com/gofiber/fiber/v3"

// Routes wires the read endpoints under /api/events.
func (h *Handler) Routes(app fiber.Router) {
	app.Get("/api/events", h.listEventsHandler)

	// GET /api/events/stream upgrades to a websocket pushing each stored record.
	if h.hub != nil {
		app.Get("/api/events/stream", h.hub.Handler)
	}
}
