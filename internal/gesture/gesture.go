// Package gesture maps drag releases to discrete widget transitions.
//
// Offsets are measured in abstract units. A Tracker converts terminal cell
// movement into units so the same thresholds work for both axes.
package gesture

// Direction records which way the last transition went. Views use it only
// to pick the enter/exit hint.
type Direction int

const (
	// Backward moved to the previous card or month.
	Backward Direction = -1
	// Still means no transition has happened yet.
	Still Direction = 0
	// Forward moved to the next card or month.
	Forward Direction = 1
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "still"
	}
}

// Sign returns the direction of n.
func Sign(n int) Direction {
	switch {
	case n > 0:
		return Forward
	case n < 0:
		return Backward
	default:
		return Still
	}
}

// Transition is the outcome of a drag release.
type Transition int

const (
	// None leaves the widget unchanged.
	None Transition = iota
	// Next advances to the next card or month.
	Next
	// Previous goes back one card or month.
	Previous
)

// String returns the string representation of the transition.
func (t Transition) String() string {
	switch t {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "none"
	}
}

// Direction returns the direction recorded for the transition.
func (t Transition) Direction() Direction {
	switch t {
	case Next:
		return Forward
	case Previous:
		return Backward
	default:
		return Still
	}
}

// Delta returns the index step of the transition: +1, -1 or 0.
func (t Transition) Delta() int {
	return int(t.Direction())
}

// Default thresholds in units.
const (
	DefaultCarouselThreshold = 100
	DefaultCalendarThreshold = 50
)

// Mapper resolves a drag-release offset against a dead zone of Threshold units.
type Mapper struct {
	Threshold float64
}

// NewMapper creates a Mapper with the given threshold magnitude.
func NewMapper(threshold float64) Mapper {
	if threshold < 0 {
		threshold = -threshold
	}
	return Mapper{Threshold: threshold}
}

// Resolve maps a signed offset to a transition. Dragging toward negative
// offsets (left, up) advances; the boundary itself is inside the dead zone.
func (m Mapper) Resolve(offset float64) Transition {
	switch {
	case offset < -m.Threshold:
		return Next
	case offset > m.Threshold:
		return Previous
	default:
		return None
	}
}
