package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// IsRelativeDate reports whether a payment date is a relative marker like
// "+ 2 months". Markers are stored verbatim; resolution belongs to the
// finance backend, this service never parses the offset.
func IsRelativeDate(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "+")
}
