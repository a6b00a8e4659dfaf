package ingest

import (
	"time"

	"webhookrepo/internal/models"
	"webhookrepo/internal/timefmt"
)

// draft holds the fields extracted from a payload before the derived ones are computed.
type draft struct {
	kind       models.EventType
	author     string
	fromBranch string
	toBranch   string
	// sourceTime is the provider timestamp, empty when the payload had none.
	sourceTime string
}

func (d draft) build(now time.Time, message func(formatted string) string) models.EventRecord {
	timestamp := d.sourceTime
	if timestamp == "" {
		timestamp = timefmt.ISO(now)
	}

	formatted := timefmt.FormatDisplay(d.sourceTime, now)

	return models.EventRecord{
		Type:          d.kind,
		Author:        d.author,
		FromBranch:    d.fromBranch,
		ToBranch:      d.toBranch,
		Timestamp:     timestamp,
		FormattedTime: formatted,
		Message:       message(formatted),
		CreatedAt:     now,
	}
}
