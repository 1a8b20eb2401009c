// Package calendar builds the day grid of the month widget and tracks which
// month it shows.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a year.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth creates a Month from a year and a zero-based month index.
// Indices outside 0..11 roll into adjacent years.
func NewMonth(year, index int) Month {
	t := time.Date(year, time.Month(index+1), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a month written as "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	return MonthOf(t), nil
}

// Index returns the zero-based month index.
func (m Month) Index() int {
	return int(m.Month) - 1
}

// Day returns midnight UTC of the given day of m. Days outside the month
// normalize the way time.Date does: day 0 is the last day of the previous month.
func (m Month) Day(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// First returns the first day of m.
func (m Month) First() time.Time {
	return m.Day(1)
}

// String formats m as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Title formats m as "September 2024".
func (m Month) Title() string {
	return m.First().Format("January 2006")
}

// MarshalText implements encoding.TextMarshaler using the "YYYY-MM" form.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Navigate returns m advanced by delta months.
func Navigate(m Month, delta int) Month {
	return NewMonth(m.Year, m.Index()+delta)
}

// DaysIn returns the number of days in m.
func DaysIn(m Month) int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
