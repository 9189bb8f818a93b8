package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTimestamp is returned when a date/time token pair cannot be
// resolved to an absolute timestamp.
var ErrMalformedTimestamp = fmt.Errorf("malformed timestamp")

// fallbackLayouts are tried, in order, when structured parsing fails.
// Day-first layouts come first: that is the ordering most exports of this
// transcript style use.
var fallbackLayouts = []string{
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/06 15:04:05",
	"2/1/06 15:04",
	"1/2/2006 15:04",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2 Jan 2006 15:04",
	"Jan 2 2006 15:04",
}

// ResolveTimestamp parses a (date token, time token) pair into an absolute
// timestamp, disambiguating day/month order and 2-digit years.
//
// Disambiguation: a 4-digit leading part means ISO order (year/month/day).
// Otherwise, a first part > 12 forces day-first, a second part > 12 forces
// month-first, and fully ambiguous dates default to day-first. If the
// resolved calendar date is invalid, day and month are swapped once before
// falling back to a permissive layout list.
func ResolveTimestamp(dateToken, timeToken string) (time.Time, error) {
	normalized := strings.NewReplacer("-", "/", ".", "/").Replace(dateToken)
	parts := strings.Split(normalized, "/")

	if len(parts) == 3 {
		if t, ok := resolveStructured(parts, timeToken); ok {
			return t, nil
		}
	}

	// Permissive fallback with day-first bias.
	combined := normalized + " " + strings.ReplaceAll(timeToken, ".", ":")
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, combined); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q %q", ErrMalformedTimestamp, dateToken, timeToken)
}

func resolveStructured(parts []string, timeToken string) (time.Time, bool) {
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	hour, minute, ok := splitTime(timeToken)
	if !ok {
		return time.Time{}, false
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		// ISO order: year/month/day.
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		first, second := nums[0], nums[1]
		year = nums[2]
		if year < 100 {
			if year <= 50 {
				year += 2000
			} else {
				year += 1900
			}
		}

		switch {
		case first > 12:
			day, month = first, second
		case second > 12:
			month, day = first, second
		default:
			// Ambiguous: default to day-first.
			day, month = first, second
		}
	}

	if validDate(year, month, day) {
		return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), true
	}
	// Invalid calendar date (e.g. month 13): retry with day and month swapped.
	if validDate(year, day, month) {
		return time.Date(year, time.Month(day), month, hour, minute, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// splitTime parses "H:MM", "H:MM:SS" or "H" time tokens. Missing minutes
// default to 0; seconds are ignored (sub-minute precision is not modeled).
func splitTime(timeToken string) (hour, minute int, ok bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(timeToken), ".", ":")
	fields := strings.Split(normalized, ":")

	hour, err := strconv.Atoi(fields[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	if len(fields) > 1 {
		minute, err = strconv.Atoi(fields[1])
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, false
		}
	}
	return hour, minute, true
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysInMonth(year, month)
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
