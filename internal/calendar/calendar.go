package calendar

import (
	"time"

	"github.com/dbmrq/pocket/internal/gesture"
)

// DefaultMonth is the month the widget opens on.
var DefaultMonth = Month{Year: 2024, Month: time.September}

// Calendar is the state of the month widget.
type Calendar struct {
	month     Month
	direction gesture.Direction
	mapper    gesture.Mapper
	cells     []DayCell
}

// New creates a Calendar showing month. Vertical drags beyond threshold
// units change the month.
func New(month Month, threshold float64) *Calendar {
	return &Calendar{
		month:  month,
		mapper: gesture.NewMapper(threshold),
		cells:  Grid(month),
	}
}

// Month returns the reference month.
func (c *Calendar) Month() Month {
	return c.month
}

// Direction returns the direction of the last month change.
func (c *Calendar) Direction() gesture.Direction {
	return c.direction
}

// Cells returns the grid of the reference month. The slice is rebuilt
// whenever the month changes and must not be modified.
func (c *Calendar) Cells() []DayCell {
	return c.cells
}

// SetMonth jumps to month. The direction is taken from its order relative
// to the current month.
func (c *Calendar) SetMonth(month Month) {
	c.direction = gesture.Sign(monthsBetween(c.month, month))
	c.month = month
	c.cells = Grid(month)
}

// Shift moves the reference month by delta. Every delta is valid.
func (c *Calendar) Shift(delta int) {
	c.direction = gesture.Sign(delta)
	c.month = Navigate(c.month, delta)
	c.cells = Grid(c.month)
}

// Next shows the following month.
func (c *Calendar) Next() {
	c.Shift(1)
}

// Prev shows the preceding month.
func (c *Calendar) Prev() {
	c.Shift(-1)
}

// HandleDrag applies a vertical drag release of offset units. Dragging up
// shows the next month. It returns the transition that was applied.
func (c *Calendar) HandleDrag(offset float64) gesture.Transition {
	tr := c.mapper.Resolve(offset)
	if tr != gesture.None {
		c.Shift(tr.Delta())
	}
	return tr
}

// SetThreshold replaces the drag dead zone.
func (c *Calendar) SetThreshold(threshold float64) {
	c.mapper = gesture.NewMapper(threshold)
}

func monthsBetween(from, to Month) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}
