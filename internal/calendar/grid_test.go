package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func countInMonth(cells []DayCell) int {
	n := 0
	for _, c := range cells {
		if c.InCurrentMonth {
			n++
		}
	}
	return n
}

func TestGridSeptember2024(t *testing.T) {
	// September 1st 2024 is a Sunday: no leading days, 30 days, 5 trailing.
	cells := Grid(Month{Year: 2024, Month: time.September})

	require.Len(t, cells, 35)
	assert.Equal(t, DayCell{Date: date(2024, time.September, 1), InCurrentMonth: true}, cells[0])
	assert.Equal(t, DayCell{Date: date(2024, time.September, 30), InCurrentMonth: true}, cells[29])

	want := []DayCell{
		{Date: date(2024, time.October, 1)},
		{Date: date(2024, time.October, 2)},
		{Date: date(2024, time.October, 3)},
		{Date: date(2024, time.October, 4)},
		{Date: date(2024, time.October, 5)},
	}
	if diff := cmp.Diff(want, cells[30:]); diff != "" {
		t.Errorf("trailing cells mismatch (-want +got):\n%s", diff)
	}
}

func TestGridLeadingDays(t *testing.T) {
	// March 1st 2024 is a Friday: five days of February lead the grid.
	cells := Grid(Month{Year: 2024, Month: time.March})

	want := []DayCell{
		{Date: date(2024, time.February, 25)},
		{Date: date(2024, time.February, 26)},
		{Date: date(2024, time.February, 27)},
		{Date: date(2024, time.February, 28)},
		{Date: date(2024, time.February, 29)},
		{Date: date(2024, time.March, 1), InCurrentMonth: true},
	}
	if diff := cmp.Diff(want, cells[:6]); diff != "" {
		t.Errorf("leading cells mismatch (-want +got):\n%s", diff)
	}
}

func TestGridLeapFebruary(t *testing.T) {
	assert.Equal(t, 29, countInMonth(Grid(Month{Year: 2024, Month: time.February})))
	assert.Equal(t, 28, countInMonth(Grid(Month{Year: 2023, Month: time.February})))
	assert.Equal(t, 28, countInMonth(Grid(Month{Year: 1900, Month: time.February})))
	assert.Equal(t, 29, countInMonth(Grid(Month{Year: 2000, Month: time.February})))
}

func TestGridAlreadyCompleteWeeks(t *testing.T) {
	// February 2015 starts on a Sunday and has 28 days: exactly four weeks.
	cells := Grid(Month{Year: 2015, Month: time.February})

	require.Len(t, cells, 28)
	for _, c := range cells {
		assert.True(t, c.InCurrentMonth, "no padding expected, got %v", c.Date)
	}
}

func TestGridTrailingOnlyFullRow(t *testing.T) {
	// August 2026 starts on a Saturday: six leading days, 31 days, five trailing.
	cells := Grid(Month{Year: 2026, Month: time.August})

	require.Len(t, cells, 42)
	assert.Equal(t, date(2026, time.July, 26), cells[0].Date)
	assert.Equal(t, date(2026, time.September, 5), cells[41].Date)
}

func TestGridProperties(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		for month := time.January; month <= time.December; month++ {
			m := Month{Year: year, Month: month}
			cells := Grid(m)

			if len(cells)%DaysPerWeek != 0 {
				t.Fatalf("%s: grid length %d is not a multiple of 7", m, len(cells))
			}

			seen := make(map[int]int)
			for i, c := range cells {
				if int(c.Date.Weekday()) != i%DaysPerWeek {
					t.Fatalf("%s: %v is in column %d", m, c.Date, i%DaysPerWeek)
				}
				inMonth := c.Date.Year() == year && c.Date.Month() == month
				if inMonth != c.InCurrentMonth {
					t.Fatalf("%s: %v has InCurrentMonth=%v", m, c.Date, c.InCurrentMonth)
				}
				if inMonth {
					seen[c.Date.Day()]++
				}
			}

			if len(seen) != DaysIn(m) {
				t.Fatalf("%s: %d distinct days, want %d", m, len(seen), DaysIn(m))
			}
			for day, n := range seen {
				if n != 1 {
					t.Fatalf("%s: day %d appears %d times", m, day, n)
				}
			}

			// Padding never fills a whole extra week.
			if len(cells) > DaysPerWeek && !cells[len(cells)-DaysPerWeek].InCurrentMonth {
				t.Fatalf("%s: last row is entirely padding", m)
			}
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month Month
		want  int
	}{
		{Month{2024, time.January}, 31},
		{Month{2024, time.February}, 29},
		{Month{2023, time.February}, 28},
		{Month{2024, time.April}, 30},
		{Month{2024, time.December}, 31},
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, DaysIn(tt.month))
		})
	}
}

func TestWeeks(t *testing.T) {
	cells := Grid(Month{Year: 2024, Month: time.September})
	weeks := Weeks(cells)

	require.Len(t, weeks, 5)
	for _, w := range weeks {
		assert.Len(t, w, DaysPerWeek)
	}
	assert.Equal(t, 29, weeks[4][0].Day())

	short := Weeks(cells[:10])
	require.Len(t, short, 2)
	assert.Len(t, short[1], 3)

	assert.Empty(t, Weeks(nil))
}

func TestMarkersFor(t *testing.T) {
	markers := DefaultMarkers()

	m, ok := markers.For(DayCell{Date: date(2024, time.September, 20), InCurrentMonth: true})
	require.True(t, ok)
	assert.Equal(t, "✕", m.Glyph)

	m, ok = markers.For(DayCell{Date: date(2024, time.September, 10), InCurrentMonth: true})
	require.True(t, ok)
	assert.Equal(t, Marker{Glyph: Dot, Color: "blue"}, m)

	_, ok = markers.For(DayCell{Date: date(2024, time.October, 4)})
	assert.False(t, ok, "padding days carry no marker")

	_, ok = markers.For(DayCell{Date: date(2024, time.September, 5), InCurrentMonth: true})
	assert.False(t, ok)
}
