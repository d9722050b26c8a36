package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// displayTimeFormat renders timestamps as "Feb 18, 2025 07:00 AM".
const displayTimeFormat = "Jan 02, 2006 03:04 PM"

// timestampLayouts are the accepted inputs for session start/end and
// reminder times. The second one covers HTML datetime-local values, which
// omit seconds.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// FormatDisplayTime converts an ISO-8601 timestamp into a human display
// string. Empty input yields the empty string. A value without the date/time
// separator, or one that fails to parse, is passed through unchanged rather
// than treated as an error.
func FormatDisplayTime(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "T") {
		return raw
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayTimeFormat)
		}
	}
	return raw
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
