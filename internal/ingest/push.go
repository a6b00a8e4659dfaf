package ingest

import (
	"fmt"
	"strings"
	"time"

	"webhookrepo/internal/models"
	"webhookrepo/internal/payload"
)

const branchRefPrefix = "refs/heads/"

// NormalizePush builds the PUSH record for a push delivery.
func NormalizePush(p payload.Payload, now time.Time) models.EventRecord {
	sourceTime, _ := p.OptionalString("head_commit.timestamp")

	d := draft{
		kind:       models.EventTypePush,
		author:     p.String("pusher.name", models.UnknownValue),
		toBranch:   branchName(p.String("ref", "")),
		sourceTime: sourceTime,
	}

	return d.build(now, func(formatted string) string {
		return fmt.Sprintf(`"%s" pushed to "%s" on %s`, d.author, d.toBranch, formatted)
	})
}

// branchName strips the refs/heads/ prefix; tag and other refs are kept whole.
func branchName(ref string) string {
	branch := strings.TrimPrefix(ref, branchRefPrefix)
	if branch == "" {
		return models.UnknownValue
	}

	return branch
}
