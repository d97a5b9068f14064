// internal/infra/telegram/dateparse.go
package telegram

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// dateLayouts are tried in order against user-typed dates.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDateFlexible turns a user-typed date into a calendar date. It accepts
// the keywords "today", "tomorrow", and "yesterday" (relative to now) plus the
// common numeric and month-name layouts.
func ParseDateFlexible(raw string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}

	switch strings.ToLower(s) {
	case "today":
		return truncateToDay(now), nil
	case "tomorrow":
		return truncateToDay(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	}

	// Month names must be capitalized for time.Parse; users rarely bother.
	s = capitalizeWords(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse date %q: try YYYY-MM-DD, MM/DD/YYYY, 'Jan 2 2006', or 'today'", raw)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func capitalizeWords(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
