package v1

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout renders calendar dates (yyyy-MM-dd).
	DateLayout = "2006-01-02"
	// MonthLayout parses year-months (yyyy-MM).
	MonthLayout = "2006-01"
)

// Local date-time layouts, tried in order. time.Parse accepts an optional
// fractional-second suffix after the seconds field, introduced by '.' or ','.
// Only '.' is valid here; ParseDateTime rejects ',' up front.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime parses an ISO-8601 local date-time such as 2025-03-06T12:30:00.
// The result is a naive wall-clock value held in UTC: no zone rules apply, so
// differences between two parsed values are plain wall-clock differences.
func ParseDateTime(text string) (time.Time, error) {
	if strings.Contains(text, ",") {
		return time.Time{}, fmt.Errorf("parse date-time %q: comma fraction separator: %w", text, ErrInvalidData)
	}
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, text, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse date-time %q: %v: %w", text, lastErr, ErrInvalidData)
}

// ParseMonth parses a yyyy-MM year-month and returns its first instant.
func ParseMonth(text string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %v: %w", text, err, ErrInvalidData)
	}
	return t, nil
}

// ParseDays parses a non-negative day count.
func ParseDays(text string) (int, error) {
	days, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("parse days %q: %w", text, ErrInvalidFormat)
	}
	if days < 0 {
		return 0, fmt.Errorf("days %d: %w", days, ErrInvalidArgument)
	}
	return days, nil
}

// WallClock drops the zone of t and keeps its wall-clock reading, so it
// compares directly with values returned by ParseDateTime.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// wholeMinutes truncates a duration to whole minutes.
func wholeMinutes(d time.Duration) int64 {
	return int64(d / time.Minute)
}
