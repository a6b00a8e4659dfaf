// Package timefmt renders webhook instants as the display strings shown next to each event.
package timefmt

import (
	"strings"
	"time"
)

// layouts lists the ISO-8601 shapes GitHub (and hand-written test payloads) send us.
// Inputs without an offset are read as UTC.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	time.DateOnly,
}

// FormatDisplay renders instant as "05th January 2024 - 10:30 AM UTC".
//
// An empty or unparsable instant falls back to now, which callers capture once per
// delivery. The wall clock of a parsed instant is rendered as-is: offsets are not
// converted, the zone is always labelled UTC.
func FormatDisplay(instant string, now time.Time) string {
	t, ok := Parse(instant)
	if !ok {
		t = now.UTC()
	}

	return Display(t)
}

// Display formats t without any parsing or zone conversion.
func Display(t time.Time) string {
	var b strings.Builder
	b.WriteString(t.Format("02"))
	b.WriteString(Ordinal(t.Day()))
	b.WriteString(t.Format(" January 2006 - 03:04 PM"))
	b.WriteString(" UTC")

	return b.String()
}

// Parse reads an ISO-8601 instant. It reports false for empty or unrecognised input.
func Parse(instant string) (time.Time, bool) {
	instant = strings.TrimSpace(instant)
	if instant == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, instant); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Ordinal returns the English suffix for a day of the month.
func Ordinal(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}

	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// ISO renders the fallback timestamp stored when a payload carries none.
func ISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
