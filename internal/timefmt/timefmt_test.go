package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 2, 18, 7, 0, 0, time.UTC)

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th",
		30: "th", 31: "st",
	}

	for day, want := range cases {
		assert.Equal(t, want, Ordinal(day), "day %d", day)
	}
}

func TestFormatDisplayZuluInstant(t *testing.T) {
	got := FormatDisplay("2024-01-05T10:30:00Z", fixedNow)
	assert.Equal(t, "05th January 2024 - 10:30 AM UTC", got)
}

func TestFormatDisplayOrdinalDays(t *testing.T) {
	cases := []struct {
		instant string
		want    string
	}{
		{"2024-06-01T00:00:00Z", "01st June 2024 - 12:00 AM UTC"},
		{"2024-06-02T12:00:00Z", "02nd June 2024 - 12:00 PM UTC"},
		{"2024-06-03T13:05:00Z", "03rd June 2024 - 01:05 PM UTC"},
		{"2024-06-04T23:59:00Z", "04th June 2024 - 11:59 PM UTC"},
		{"2024-06-11T09:00:00Z", "11th June 2024 - 09:00 AM UTC"},
		{"2024-06-12T09:00:00Z", "12th June 2024 - 09:00 AM UTC"},
		{"2024-06-13T09:00:00Z", "13th June 2024 - 09:00 AM UTC"},
		{"2024-06-21T09:00:00Z", "21st June 2024 - 09:00 AM UTC"},
		{"2024-06-22T09:00:00Z", "22nd June 2024 - 09:00 AM UTC"},
		{"2024-06-23T09:00:00Z", "23rd June 2024 - 09:00 AM UTC"},
	}

	for _, tc := range cases {
		t.Run(tc.instant, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDisplay(tc.instant, fixedNow))
		})
	}
}

func TestFormatDisplayKeepsOffsetWallClock(t *testing.T) {
	got := FormatDisplay("2024-01-05T10:30:00+05:30", fixedNow)
	assert.Equal(t, "05th January 2024 - 10:30 AM UTC", got)
}

func TestFormatDisplayAcceptsFractionalSeconds(t *testing.T) {
	got := FormatDisplay("2024-01-05T22:45:12.123456Z", fixedNow)
	assert.Equal(t, "05th January 2024 - 10:45 PM UTC", got)
}

func TestFormatDisplayNaiveInstant(t *testing.T) {
	got := FormatDisplay("2024-12-31T07:08:09", fixedNow)
	assert.Equal(t, "31st December 2024 - 07:08 AM UTC", got)
}

func TestFormatDisplayFallsBackToNow(t *testing.T) {
	want := "02nd March 2025 - 06:07 PM UTC"

	assert.Equal(t, want, FormatDisplay("", fixedNow))
	assert.Equal(t, want, FormatDisplay("   ", fixedNow))
	assert.Equal(t, want, FormatDisplay("not-a-date", fixedNow))
	assert.Equal(t, want, FormatDisplay("2024-13-45T99:99:99Z", fixedNow))
}

func TestFormatDisplayRendersNowInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, time.March, 2, 21, 7, 0, 0, loc)

	assert.Equal(t, "02nd March 2025 - 06:07 PM UTC", FormatDisplay("", now))
}

func TestFormatDisplayIsDeterministic(t *testing.T) {
	first := FormatDisplay("2023-11-23T16:20:00Z", fixedNow)
	second := FormatDisplay("2023-11-23T16:20:00Z", fixedNow.Add(48*time.Hour))

	assert.Equal(t, first, second)
	assert.Equal(t, "23rd November 2023 - 04:20 PM UTC", first)
}

func TestParse(t *testing.T) {
	parsed, ok := Parse("2024-01-05")
	require.True(t, ok)
	assert.Equal(t, 5, parsed.Day())

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestISO(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	at := time.Date(2024, time.January, 5, 11, 30, 0, 0, loc)

	assert.Equal(t, "2024-01-05T10:30:00Z", ISO(at))
}
