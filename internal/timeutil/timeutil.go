package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date format (YYYY-MM-DD) used by upstream
// date filters and the current_date operation.
const DateLayout = "2006-01-02"

// ClockLayout is the canonical time format (HH:MM:SS).
const ClockLayout = "15:04:05"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ValidateDate rejects date filters that are not YYYY-MM-DD before they
// reach the upstream API. Empty values pass; the filters are optional.
func ValidateDate(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := ParseDate(value); err != nil {
		return fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", name, value)
	}
	return nil
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock formats a time as HH:MM:SS in its current location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
