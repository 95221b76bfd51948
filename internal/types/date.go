package types

import (
	"errors"
	"strings"
	"time"

	// Household time zones must resolve on hosts without a zoneinfo database
	_ "time/tzdata"
)

// ErrInvalidDate is returned for dates in none of the supported layouts.
var ErrInvalidDate = errors.New("the date must be formatted as RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD")

// Layouts without an offset are interpreted in the location passed to ParseDate.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses a date as sent by API clients and browser forms. An empty
// string returns the zero time.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
