package utils

import (
	"strings"
	"time"
)

// Layouts seen in enrollment dates across our imports. Order matters: the
// richest format wins before the date-only fallback.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a record date of arbitrary provenance. It never returns
// an error: callers treat an unparseable date as "not a date" and move on.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
