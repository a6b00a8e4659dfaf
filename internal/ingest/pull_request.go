package ingest

import (
	"fmt"
	"time"

	"webhookrepo/internal/models"
	"webhookrepo/internal/payload"
)

// pullRequestActions are the only actions that produce a PULL_REQUEST record.
var pullRequestActions = map[string]bool{
	"opened":   true,
	"reopened": true,
}

// NormalizePullRequest builds the PULL_REQUEST record for opened and reopened
// pull requests and reports false for every other action.
func NormalizePullRequest(p payload.Payload, now time.Time) (models.EventRecord, bool) {
	if !pullRequestActions[p.String("action", "")] {
		return models.EventRecord{}, false
	}

	sourceTime, _ := p.OptionalString("pull_request.created_at")

	d := draft{
		kind:       models.EventTypePullRequest,
		author:     p.String("pull_request.user.login", models.UnknownValue),
		fromBranch: p.String("pull_request.head.ref", models.UnknownValue),
		toBranch:   p.String("pull_request.base.ref", models.UnknownValue),
		sourceTime: sourceTime,
	}

	return d.build(now, func(formatted string) string {
		return fmt.Sprintf(`"%s" submitted a pull request from "%s" to "%s" on %s`, d.author, d.fromBranch, d.toBranch, formatted)
	}), true
}
