// ABOUTME: Calendar-date and timestamp helpers shared by all models.
// ABOUTME: Dates are YYYY-MM-DD strings; string order equals chronological order.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used throughout the data layer.
const DateLayout = "2006-01-02"

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Today returns today's date in the local timezone.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return t, nil
}

// AddDays returns the date shifted by the given number of days.
// Negative values shift into the past. Invalid dates are returned unchanged.
func AddDays(date string, days int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}

// MondayOf returns the Monday of the week containing the given date.
func MondayOf(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}
