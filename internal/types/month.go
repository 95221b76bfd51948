// Package types implements special types for the household ledger.
package types

import (
	"fmt"
	"time"
)

// Month is a calendar month in a specific year.
//
// The underlying time is always 00:00 on the first day of the month in
// the location the month was created for.
type Month time.Time

// NewMonth returns a new Month in UTC.
func NewMonth(year int, month time.Month) Month {
	return NewMonthIn(year, month, time.UTC)
}

// NewMonthIn returns a new Month in the specified location.
func NewMonthIn(year int, month time.Month, loc *time.Location) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, loc))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonthIn(year, month, t.Location())
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
// in the specified location.
func ParseMonth(s string, loc *time.Location) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), m.Number())
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Number returns the month of the year, 1 to 12.
func (m Month) Number() int {
	return int(time.Time(m).Month())
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return m.Year() < n.Year() || (m.Year() == n.Year() && m.Number() < n.Number())
}

// Bounds returns the first instant of the month and the first instant of
// the following month, both in UTC. A time t is in the month when
// start <= t < end.
func (m Month) Bounds() (start, end time.Time) {
	start = time.Time(m)
	return start.UTC(), start.AddDate(0, 1, 0).UTC()
}
