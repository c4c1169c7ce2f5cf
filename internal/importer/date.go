package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// instantLayout is the wire format for harvest instants: midnight UTC with
// millisecond precision.
const instantLayout = "2006-01-02T15:04:05.000Z"

// NormalizeDate parses a date cell of shape M/D/Y, where month and day may
// be one or two digits and the year two or four. Two-digit years mean
// 2000+YY. The importer accepts only this shape; ISO dates and every other
// format are rejected. On success the returned instant is midnight UTC of
// the parsed calendar date.
func NormalizeDate(text string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date must be M/D/YYYY or M/D/YY, got %q", strings.TrimSpace(text))
	}

	month, ok := parseDatePart(parts[0], 1, 2)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q", parts[0])
	}
	day, ok := parseDatePart(parts[1], 1, 2)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid day %q", parts[1])
	}
	year, ok := parseDatePart(parts[2], 2, 4)
	if !ok || len(parts[2]) == 3 {
		return time.Time{}, fmt.Errorf("invalid year %q", parts[2])
	}
	if len(parts[2]) == 2 {
		year += 2000
	}

	// time.Date normalizes out-of-range components (13/45/2025 would roll
	// over), so round-trip the calendar date to enforce validity.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", strings.TrimSpace(text))
	}

	return date, nil
}

// FormatInstant serializes an instant in the import wire format.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

func parseDatePart(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
