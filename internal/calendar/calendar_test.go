package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbmrq/pocket/internal/gesture"
)

func TestNewMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		index int
		want  Month
	}{
		{"january", 2024, 0, Month{2024, time.January}},
		{"september", 2024, 8, Month{2024, time.September}},
		{"index 12 rolls forward", 2024, 12, Month{2025, time.January}},
		{"index -1 rolls back", 2024, -1, Month{2023, time.December}},
		{"two years ahead", 2024, 26, Month{2026, time.March}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMonth(tt.year, tt.index))
		})
	}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name  string
		from  Month
		delta int
		want  Month
	}{
		{"back from january", Month{2024, time.January}, -1, Month{2023, time.December}},
		{"forward from december", Month{2024, time.December}, 1, Month{2025, time.January}},
		{"zero", Month{2024, time.June}, 0, Month{2024, time.June}},
		{"plus thirteen", Month{2024, time.June}, 13, Month{2025, time.July}},
		{"minus twenty-five", Month{2024, time.June}, -25, Month{2022, time.May}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Navigate(tt.from, tt.delta))
		})
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, Month{2024, time.February}, m)

	m, err = ParseMonth(" 1999-12 ")
	require.NoError(t, err)
	assert.Equal(t, Month{1999, time.December}, m)

	for _, bad := range []string{"", "2024", "2024-13", "Sept 2024", "2024/09"} {
		_, err := ParseMonth(bad)
		assert.Error(t, err, bad)
	}
}

func TestMonthFormatting(t *testing.T) {
	m := Month{2024, time.September}
	assert.Equal(t, "2024-09", m.String())
	assert.Equal(t, "September 2024", m.Title())
	assert.Equal(t, 8, m.Index())
	assert.Equal(t, time.Sunday, m.First().Weekday())
	assert.Equal(t, m, MonthOf(m.Day(17)))
}

func TestCalendarShift(t *testing.T) {
	c := New(DefaultMonth, gesture.DefaultCalendarThreshold)
	require.Equal(t, gesture.Still, c.Direction())
	require.Len(t, c.Cells(), 35)

	c.Next()
	assert.Equal(t, Month{2024, time.October}, c.Month())
	assert.Equal(t, gesture.Forward, c.Direction())
	assert.True(t, c.Cells()[2].InCurrentMonth, "October 2024 starts on a Tuesday")
	assert.Equal(t, 1, c.Cells()[2].Day())

	c.Prev()
	c.Prev()
	assert.Equal(t, Month{2024, time.August}, c.Month())
	assert.Equal(t, gesture.Backward, c.Direction())
}

func TestCalendarShiftAcrossYears(t *testing.T) {
	c := New(Month{2024, time.January}, gesture.DefaultCalendarThreshold)

	c.Prev()
	assert.Equal(t, Month{2023, time.December}, c.Month())

	c.Shift(2)
	assert.Equal(t, Month{2024, time.February}, c.Month())
	assert.Equal(t, 29, countInMonth(c.Cells()))
}

func TestCalendarHandleDrag(t *testing.T) {
	c := New(DefaultMonth, gesture.DefaultCalendarThreshold)

	assert.Equal(t, gesture.None, c.HandleDrag(-50))
	assert.Equal(t, DefaultMonth, c.Month())
	assert.Equal(t, gesture.Still, c.Direction())

	assert.Equal(t, gesture.Next, c.HandleDrag(-51))
	assert.Equal(t, Month{2024, time.October}, c.Month())
	assert.Equal(t, gesture.Forward, c.Direction())

	assert.Equal(t, gesture.Previous, c.HandleDrag(64))
	assert.Equal(t, DefaultMonth, c.Month())
	assert.Equal(t, gesture.Backward, c.Direction())

	assert.Equal(t, gesture.None, c.HandleDrag(50))
	assert.Equal(t, gesture.Backward, c.Direction(), "a dead-zone release keeps the last direction")
}

func TestCalendarSetMonth(t *testing.T) {
	c := New(DefaultMonth, gesture.DefaultCalendarThreshold)

	c.SetMonth(Month{2023, time.February})
	assert.Equal(t, gesture.Backward, c.Direction())
	assert.Len(t, c.Cells(), 35)

	c.SetMonth(Month{2023, time.February})
	assert.Equal(t, gesture.Still, c.Direction())

	c.SetMonth(Month{2030, time.January})
	assert.Equal(t, gesture.Forward, c.Direction())
}

func TestCalendarSetThreshold(t *testing.T) {
	c := New(DefaultMonth, gesture.DefaultCalendarThreshold)
	c.SetThreshold(200)

	assert.Equal(t, gesture.None, c.HandleDrag(-150))
	assert.Equal(t, gesture.Next, c.HandleDrag(-201))
}

func TestMonthText(t *testing.T) {
	text, err := Month{2024, time.September}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-09", string(text))

	var m Month
	require.NoError(t, m.UnmarshalText([]byte("2023-02")))
	assert.Equal(t, Month{2023, time.February}, m)
	assert.False(t, m.IsZero())

	assert.Error(t, m.UnmarshalText([]byte("soon")))
	assert.Equal(t, Month{2023, time.February}, m, "failed unmarshal leaves value unchanged")
	assert.True(t, Month{}.IsZero())
}
