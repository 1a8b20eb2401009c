package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/pocket/internal/calendar"
	"github.com/dbmrq/pocket/internal/palette"
	"github.com/dbmrq/pocket/internal/tui/styles"
)

// DayCellWidth is the width of one grid column in cells.
const DayCellWidth = 5

const calendarWidth = DayCellWidth * calendar.DaysPerWeek

// CalendarData configures what the month grid decorates.
type CalendarData struct {
	Markers calendar.Markers
	// HighlightDay gets a background on in-month cells; 0 disables it.
	HighlightDay int
	// Summary is shown on the right of the month title.
	Summary string
}

// CalendarView renders the month widget: title row, weekday headers and the
// day grid with a marker line under every week.
type CalendarView struct {
	cal  *calendar.Calendar
	data CalendarData
}

// NewCalendarView creates a view over cal.
func NewCalendarView(cal *calendar.Calendar, data CalendarData) *CalendarView {
	return &CalendarView{cal: cal, data: data}
}

// SetData replaces the decorations.
func (v *CalendarView) SetData(data CalendarData) {
	v.data = data
}

// Calendar returns the calendar the view renders.
func (v *CalendarView) Calendar() *calendar.Calendar {
	return v.cal
}

// Width returns the width of the grid in cells.
func (v *CalendarView) Width() int {
	return calendarWidth
}

// View renders the month widget.
func (v *CalendarView) View() string {
	var b strings.Builder

	b.WriteString(v.renderTitle())
	b.WriteString("\n\n")

	for _, h := range calendar.WeekdayHeaders {
		b.WriteString(styles.WeekdayStyle.Width(DayCellWidth).Render(h))
	}

	for _, week := range calendar.Weeks(v.cal.Cells()) {
		b.WriteString("\n")
		var days, marks strings.Builder
		for _, cell := range week {
			d, m := v.renderCell(cell)
			days.WriteString(d)
			marks.WriteString(m)
		}
		b.WriteString(days.String())
		b.WriteString("\n")
		b.WriteString(marks.String())
	}

	return b.String()
}

func (v *CalendarView) renderTitle() string {
	m := v.cal.Month()
	left := styles.MonthStyle.Render(m.Month.String()) + " " +
		styles.YearStyle.Render(strconv.Itoa(m.Year)) + " " +
		styles.MutedTextStyle.Render(slideHint(v.cal.Direction(), "▲", "▼"))
	right := styles.SummaryStyle.Render(v.data.Summary)

	gap := calendarWidth - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderCell returns the day number and the marker line of one cell.
func (v *CalendarView) renderCell(cell calendar.DayCell) (string, string) {
	base := lipgloss.NewStyle().Width(DayCellWidth).Align(lipgloss.Center)

	day := base.Foreground(styles.Foreground)
	mark := base
	if !cell.InCurrentMonth {
		day = base.Foreground(styles.Dim)
	} else if v.data.HighlightDay != 0 && cell.Day() == v.data.HighlightDay {
		day = day.Background(styles.HighlightBackground)
		mark = mark.Background(styles.HighlightBackground)
	}

	glyph := ""
	if marker, ok := v.data.Markers.For(cell); ok {
		glyph = marker.Glyph
		if marker.Color != "" {
			mark = mark.Foreground(palette.Color(marker.Color))
		} else {
			mark = mark.Foreground(styles.Foreground)
		}
	}

	return day.Render(strconv.Itoa(cell.Day())), mark.Render(glyph)
}
