package calendar

import "time"

// DaysPerWeek is the number of grid columns.
const DaysPerWeek = 7

// WeekdayHeaders are the column headers, Sunday first.
var WeekdayHeaders = [DaysPerWeek]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// DayCell is one square of the month grid.
type DayCell struct {
	Date time.Time
	// InCurrentMonth is false for padding days from adjacent months.
	InCurrentMonth bool
}

// Day returns the day of the month of the cell.
func (c DayCell) Day() int {
	return c.Date.Day()
}

// Grid returns the cells of m as complete Sunday-first weeks: the tail of the
// previous month, every day of m, then the head of the next month.
func Grid(m Month) []DayCell {
	firstWeekday := int(m.First().Weekday())
	lastDay := DaysIn(m)

	cells := make([]DayCell, 0, firstWeekday+lastDay+DaysPerWeek)

	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, DayCell{Date: m.Day(i - firstWeekday + 1)})
	}

	for day := 1; day <= lastDay; day++ {
		cells = append(cells, DayCell{Date: m.Day(day), InCurrentMonth: true})
	}

	// A full last week leaves a remainder of 7, which means no padding.
	remaining := DaysPerWeek - len(cells)%DaysPerWeek
	if remaining < DaysPerWeek {
		next := Navigate(m, 1)
		for day := 1; day <= remaining; day++ {
			cells = append(cells, DayCell{Date: next.Day(day)})
		}
	}

	return cells
}

// Weeks splits cells into rows of DaysPerWeek. A short final row is kept as is.
func Weeks(cells []DayCell) [][]DayCell {
	weeks := make([][]DayCell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for start := 0; start < len(cells); start += DaysPerWeek {
		end := min(start+DaysPerWeek, len(cells))
		weeks = append(weeks, cells[start:end])
	}
	return weeks
}
