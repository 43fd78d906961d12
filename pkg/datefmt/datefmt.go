// Package datefmt renders timestamps the way the portal shows them to readers.
package datefmt

import (
	"fmt"
	"time"
)

const (
	DateLayout   = "2006-01-02"
	DetailLayout = "2006-01-02 15:04:05"
)

// Custom renders t relative to now for list views: "just now", "N minutes
// ago", "N hours ago" within a day, and the calendar date afterwards.
// Timestamps in the future are rendered as a date.
func Custom(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < 0:
		return t.Format(DateLayout)
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return t.Format(DateLayout)
	}
}

// Detail renders the full timestamp shown on detail pages.
func Detail(t time.Time) string {
	return t.Format(DetailLayout)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
