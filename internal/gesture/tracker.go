package gesture

import tea "github.com/charmbracelet/bubbletea"

// Axis selects which coordinate a Tracker measures.
type Axis int

const (
	// Horizontal measures movement along X.
	Horizontal Axis = iota
	// Vertical measures movement along Y.
	Vertical
)

// Default cell size in units. A terminal cell is roughly twice as tall as
// it is wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Drag is a completed press-move-release sequence.
type Drag struct {
	// StartX and StartY are the cell where the press happened.
	StartX, StartY int
	// EndX and EndY are the cell where the button was released.
	EndX, EndY int
	// Offset is the signed movement along the tracker's axis, in units.
	Offset float64
}

// Click reports whether the pointer did not move between press and release.
func (d Drag) Click() bool {
	return d.StartX == d.EndX && d.StartY == d.EndY
}

// Tracker follows left-button mouse events and reports drags on release.
type Tracker struct {
	axis         Axis
	unitsPerCell float64

	active         bool
	startX, startY int
	lastX, lastY   int
}

// NewTracker creates a Tracker for axis where one cell is unitsPerCell units.
func NewTracker(axis Axis, unitsPerCell float64) *Tracker {
	if unitsPerCell <= 0 {
		unitsPerCell = 1
	}
	return &Tracker{axis: axis, unitsPerCell: unitsPerCell}
}

// Dragging returns whether a press is in progress.
func (t *Tracker) Dragging() bool {
	return t.active
}

// Offset returns the current offset of an in-progress drag, in units.
func (t *Tracker) Offset() float64 {
	if !t.active {
		return 0
	}
	return t.offset(t.lastX, t.lastY)
}

// Press starts a drag at the given cell.
func (t *Tracker) Press(x, y int) {
	t.active = true
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
}

// Move records pointer motion during a drag.
func (t *Tracker) Move(x, y int) {
	if !t.active {
		return
	}
	t.lastX, t.lastY = x, y
}

// Release ends the drag. It returns false when no press was in progress.
func (t *Tracker) Release(x, y int) (Drag, bool) {
	if !t.active {
		return Drag{}, false
	}
	t.active = false
	return Drag{
		StartX: t.startX,
		StartY: t.startY,
		EndX:   x,
		EndY:   y,
		Offset: t.offset(x, y),
	}, true
}

// Cancel drops an in-progress drag.
func (t *Tracker) Cancel() {
	t.active = false
}

// Update feeds a mouse message to the tracker. It returns the finished drag
// when msg releases a press the tracker saw.
func (t *Tracker) Update(msg tea.MouseMsg) (Drag, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			t.Press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		t.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return t.Release(msg.X, msg.Y)
	}
	return Drag{}, false
}

func (t *Tracker) offset(x, y int) float64 {
	if t.axis == Vertical {
		return float64(y-t.startY) * t.unitsPerCell
	}
	return float64(x-t.startX) * t.unitsPerCell
}
