package dosing

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// dateTimeLayout is an ISO 8601 date-time without a zone offset.
const dateTimeLayout = "2006-01-02T15:04:05"

const secondsPerDay = 24 * 60 * 60

// ParseDate parses a YYYY-MM-DD calendar date. An RFC 3339 timestamp or a
// zoneless ISO date-time is also accepted and truncated to its calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CalendarDate(t), nil
	}
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		return CalendarDate(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateRange, s)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalendarDate keeps the wall-clock date of t at midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddWeeks adds whole weeks using calendar-day arithmetic.
func AddWeeks(t time.Time, weeks int) time.Time {
	return CalendarDate(t).AddDate(0, 0, weeks*7)
}

func daysBetween(from, to time.Time) int {
	// Unix seconds rather than Sub: a Duration saturates after ~292 years.
	return int((CalendarDate(to).Unix() - CalendarDate(from).Unix()) / secondsPerDay)
}
