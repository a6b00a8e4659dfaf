// Package eventstore persists normalized webhook events and lists the most recent ones.
package eventstore

import (
	"context"

	"webhookrepo/internal/models"
)

// MaxListLimit caps every listing served by the read API.
const MaxListLimit = 50

// Gateway is the append-only event store the ingestion pipeline writes to.
type Gateway interface {
	// Insert appends one immutable record.
	Insert(ctx context.Context, record models.EventRecord) error
	// ListRecent returns at most limit records ordered by created_at, newest first.
	// A limit of zero or less yields an empty listing.
	ListRecent(ctx context.Context, limit int) ([]models.EventRecord, error)
}

// ClampLimit bounds a requested listing size to 1..MaxListLimit.
func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}

	return limit
}
