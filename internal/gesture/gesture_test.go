package gesture

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperResolve(t *testing.T) {
	m := NewMapper(DefaultCarouselThreshold)

	tests := []struct {
		name   string
		offset float64
		want   Transition
	}{
		{"no movement", 0, None},
		{"inside dead zone left", -40, None},
		{"inside dead zone right", 99, None},
		{"exactly negative threshold", -100, None},
		{"exactly positive threshold", 100, None},
		{"just past negative threshold", -101, Next},
		{"just past positive threshold", 101, Previous},
		{"fractional past threshold", -100.5, Next},
		{"far left", -400, Next},
		{"far right", 400, Previous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Resolve(tt.offset))
		})
	}
}

func TestMapperCalendarThreshold(t *testing.T) {
	m := NewMapper(DefaultCalendarThreshold)

	assert.Equal(t, None, m.Resolve(50))
	assert.Equal(t, None, m.Resolve(-50))
	assert.Equal(t, Previous, m.Resolve(51))
	assert.Equal(t, Next, m.Resolve(-51))
}

func TestNewMapperNegativeThreshold(t *testing.T) {
	m := NewMapper(-20)
	assert.Equal(t, 20.0, m.Threshold)
	assert.Equal(t, Next, m.Resolve(-21))
}

func TestTransitionDirection(t *testing.T) {
	assert.Equal(t, Forward, Next.Direction())
	assert.Equal(t, Backward, Previous.Direction())
	assert.Equal(t, Still, None.Direction())

	assert.Equal(t, 1, Next.Delta())
	assert.Equal(t, -1, Previous.Delta())
	assert.Equal(t, 0, None.Delta())
}

func TestSign(t *testing.T) {
	assert.Equal(t, Forward, Sign(3))
	assert.Equal(t, Backward, Sign(-2))
	assert.Equal(t, Still, Sign(0))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
	assert.Equal(t, "still", Still.String())
	assert.Equal(t, "next", Next.String())
	assert.Equal(t, "previous", Previous.String())
	assert.Equal(t, "none", None.String())
}

func TestTrackerHorizontalDrag(t *testing.T) {
	tr := NewTracker(Horizontal, DefaultCellWidth)

	tr.Press(30, 5)
	require.True(t, tr.Dragging())
	tr.Move(20, 6)
	assert.Equal(t, -80.0, tr.Offset())

	drag, ok := tr.Release(15, 7)
	require.True(t, ok)
	assert.False(t, tr.Dragging())
	assert.Equal(t, -120.0, drag.Offset)
	assert.False(t, drag.Click())
	assert.Equal(t, Next, NewMapper(DefaultCarouselThreshold).Resolve(drag.Offset))
}

func TestTrackerVerticalDrag(t *testing.T) {
	tr := NewTracker(Vertical, DefaultCellHeight)

	tr.Press(10, 10)
	drag, ok := tr.Release(40, 14)
	require.True(t, ok)
	assert.Equal(t, 64.0, drag.Offset)
	assert.Equal(t, Previous, NewMapper(DefaultCalendarThreshold).Resolve(drag.Offset))
}

func TestTrackerClick(t *testing.T) {
	tr := NewTracker(Horizontal, DefaultCellWidth)

	tr.Press(4, 4)
	drag, ok := tr.Release(4, 4)
	require.True(t, ok)
	assert.True(t, drag.Click())
	assert.Zero(t, drag.Offset)
}

func TestTrackerReleaseWithoutPress(t *testing.T) {
	tr := NewTracker(Horizontal, DefaultCellWidth)

	tr.Move(3, 3)
	_, ok := tr.Release(9, 9)
	assert.False(t, ok)
	assert.Zero(t, tr.Offset())
}

func TestTrackerCancel(t *testing.T) {
	tr := NewTracker(Horizontal, DefaultCellWidth)

	tr.Press(1, 1)
	tr.Cancel()
	_, ok := tr.Release(50, 1)
	assert.False(t, ok)
}

func TestTrackerNonPositiveScale(t *testing.T) {
	tr := NewTracker(Horizontal, 0)

	tr.Press(0, 0)
	drag, _ := tr.Release(-3, 0)
	assert.Equal(t, -3.0, drag.Offset)
}

func TestTrackerUpdateMouseMsgs(t *testing.T) {
	tr := NewTracker(Horizontal, DefaultCellWidth)

	_, done := tr.Update(tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.False(t, done)
	_, done = tr.Update(tea.MouseMsg{X: 30, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.False(t, done)

	drag, done := tr.Update(tea.MouseMsg{X: 25, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	require.True(t, done)
	assert.Equal(t, -120.0, drag.Offset)
}

func TestTrackerIgnoresOtherButtons(t *testing.T) {
	tr := NewTracker(Horizontal, DefaultCellWidth)

	tr.Update(tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, tr.Dragging())

	_, done := tr.Update(tea.MouseMsg{X: 0, Y: 3, Action: tea.MouseActionRelease})
	assert.False(t, done)
}
