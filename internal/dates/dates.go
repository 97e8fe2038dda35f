// Package dates holds the calendar-day arithmetic used throughout the
// tracker. Dates are timezone-naive YYYY-MM-DD strings: a day means the
// user's local day, and nothing here converts through UTC in a way that
// could shift it.
package dates

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// Today returns the current calendar date in the local timezone.
func Today() string {
	return time.Now().Format(dayFormat)
}

// Parse converts a YYYY-MM-DD string to a midnight time value. The zone is
// irrelevant to callers; all arithmetic stays within a single location.
func Parse(dateStr string) (time.Time, error) {
	day, err := time.Parse(dayFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", dateStr, err)
	}
	return day, nil
}

// Valid reports whether dateStr is a well-formed calendar date.
func Valid(dateStr string) bool {
	_, err := time.Parse(dayFormat, dateStr)
	return err == nil
}

// AddDays returns the calendar date n days after dateStr. n may be negative.
// Month and year rollover follow the civil calendar, leap days included.
func AddDays(dateStr string, n int) (string, error) {
	day, err := Parse(dateStr)
	if err != nil {
		return "", err
	}
	return day.AddDate(0, 0, n).Format(dayFormat), nil
}

// DaysBetween returns the number of whole calendar days from one date to
// another. It is negative when to precedes from.
func DaysBetween(from, to string) (int, error) {
	start, err := Parse(from)
	if err != nil {
		return 0, err
	}
	end, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// FormatReadable renders a date for display, e.g. "Monday, January 5".
// Malformed input renders as an empty string rather than an error since
// this only ever feeds labels.
func FormatReadable(dateStr string) string {
	day, err := Parse(dateStr)
	if err != nil {
		return ""
	}
	return day.Format("Monday, January 2")
}
