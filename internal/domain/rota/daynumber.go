// internal/domain/rota/daynumber.go
package rota

import (
	"fmt"
	"time"
)

// Anchor fixes the phase of the 4-day rotation cycle: Date is a day known to
// have carried DayNumber.
type Anchor struct {
	Date      time.Time
	DayNumber int
}

// DefaultAnchor is the reference the unit has used since spring 2025:
// March 12, 2025 was Day 3.
var DefaultAnchor = Anchor{
	Date:      time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
	DayNumber: 3,
}

// ErrInvalidDate is returned by DayNumber for a zero or otherwise unusable date.
var ErrInvalidDate = fmt.Errorf("invalid date: a calendar date is required")

// midnightUTC strips the clock and zone so day deltas count calendar days,
// not 24-hour spans across DST transitions.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayNumber returns the position of target in the repeating 4-day cycle,
// always in 1..4, for dates before or after the anchor alike.
func DayNumber(target time.Time, a Anchor) (int, error) {
	if target.IsZero() || a.Date.IsZero() {
		return 0, ErrInvalidDate
	}
	if a.DayNumber < 1 || a.DayNumber > 4 {
		return 0, fmt.Errorf("invalid anchor day number %d: must be 1-4", a.DayNumber)
	}

	deltaDays := int(midnightUTC(target).Sub(midnightUTC(a.Date)).Hours() / 24)

	// Euclidean remainder: negative deltas must still land in 0..3.
	rem := (deltaDays + a.DayNumber - 1) % 4
	if rem < 0 {
		rem += 4
	}
	return rem + 1, nil
}
