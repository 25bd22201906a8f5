package model

import (
	"fmt"
	"time"
)

// Month identifies a single calendar month. The zero value is invalid;
// construct one with NewMonth, ParseMonth, or MonthOf.
type Month struct {
	Year int
	Mon  time.Month
}

// NewMonth creates a Month, validating the year and month values.
func NewMonth(year int, mon time.Month) (Month, error) {
	if year < 1 {
		return Month{}, fmt.Errorf("invalid year: %d", year)
	}
	if mon < time.January || mon > time.December {
		return Month{}, fmt.Errorf("invalid month: %d", mon)
	}
	return Month{Year: year, Mon: mon}, nil
}

// ParseMonth parses a month key in "YYYY-MM" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (use YYYY-MM): %w", s, err)
	}
	return Month{Year: t.Year(), Mon: t.Month()}, nil
}

// MonthOf returns the Month containing the given time.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Mon: t.Month()}
}

// String renders the canonical "YYYY-MM" key used at the storage and
// display boundaries.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Mon))
}

// IsZero reports whether the month is the invalid zero value.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Mon == 0
}

// Contains reports whether the given date falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Mon
}
