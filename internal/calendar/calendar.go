// Package calendar holds the date conventions shared by the ledgers: every
// transaction, budget and goal date is a calendar day in UTC.
package calendar

import (
	"fmt"
	"time"
)

// Layout is the wire format for calendar days.
const Layout = "2006-01-02"

// Clock returns the current instant. Tests substitute a fixed clock.
type Clock func() time.Time

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day according to clock.
func (c Clock) Today() time.Time {
	if c == nil {
		return DateOnly(time.Now())
	}
	return DateOnly(c())
}

// MonthBounds returns the first and last day of the month containing day.
func MonthBounds(day time.Time) (time.Time, time.Time) {
	day = DateOnly(day)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// Parse parses a YYYY-MM-DD day.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

// Within reports whether day lies in the inclusive range [start, end].
func Within(day, start, end time.Time) bool {
	day = DateOnly(day)
	return !day.Before(DateOnly(start)) && !day.After(DateOnly(end))
}
