package utils

import (
	"time"
)

const (
	layoutDateTime  = "2006-01-02 15:04:05"
	layoutDisplay   = "Jan 2, 2006"
	layoutTimestamp = "20060102-150405"
)

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatDisplayDate is the short form used in list views and exports.
func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(time.Local).Format(layoutDisplay)
}

// FileStamp is a filename friendly timestamp.
func FileStamp(t time.Time) string {
	return t.UTC().Format(layoutTimestamp)
}
