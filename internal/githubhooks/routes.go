// Package githubhooks exposes the GitHub webhook receiver endpoint.
package githubhooks

import "github.com/gofiber/fiber/v3"

// Routes wires the GitHub webhook endpoints under /webhook.
func (h *Handler) Routes(app fiber.Router) {
	group := app.Group("/webhook")

	// POST /webhook/receiver ingests push and pull_request deliveries.
	group.Post("/receiver", h.receiverHandler)
}
