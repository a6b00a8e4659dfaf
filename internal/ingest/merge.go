package ingest

import (
	"fmt"
	"time"

	"webhookrepo/internal/models"
	"webhookrepo/internal/payload"
)

// NormalizeMerge builds the MERGE record for a closed and merged pull request.
func NormalizeMerge(p payload.Payload, now time.Time) models.EventRecord {
	sourceTime, _ := p.OptionalString("pull_request.merged_at")

	d := draft{
		kind:       models.EventTypeMerge,
		author:     p.String("pull_request.merged_by.login", models.UnknownValue),
		fromBranch: p.String("pull_request.head.ref", models.UnknownValue),
		toBranch:   p.String("pull_request.base.ref", models.UnknownValue),
		sourceTime: sourceTime,
	}

	return d.build(now, func(formatted string) string {
		return fmt.Sprintf(`"%s" merged branch "%s" to "%s" on %s`, d.author, d.fromBranch, d.toBranch, formatted)
	})
}
