package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCopyIndicatorDelay is how long "Copied!" stays visible.
const DefaultCopyIndicatorDelay = 3 * time.Second

// CopyExpiredMsg hides the indicator shown by the copy with the same Seq.
type CopyExpiredMsg struct {
	Seq int
}

// CopyIndicator shows a transient "Copied!" label after a successful copy.
// Each Show bumps a sequence number so that only the newest timer hides it.
type CopyIndicator struct {
	visible bool
	seq     int
	delay   time.Duration
}

// NewCopyIndicator creates a hidden indicator that stays up for delay.
func NewCopyIndicator(delay time.Duration) *CopyIndicator {
	return &CopyIndicator{delay: delay}
}

// SetDelay changes the delay used by the next Show.
func (c *CopyIndicator) SetDelay(delay time.Duration) {
	c.delay = delay
}

// Show makes the indicator visible and returns the command that hides it.
func (c *CopyIndicator) Show() tea.Cmd {
	c.seq++
	c.visible = true
	seq := c.seq
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return CopyExpiredMsg{Seq: seq}
	})
}

// Update handles CopyExpiredMsg. Stale messages are ignored.
func (c *CopyIndicator) Update(msg tea.Msg) {
	if m, ok := msg.(CopyExpiredMsg); ok && m.Seq == c.seq {
		c.visible = false
	}
}

// IsVisible returns whether "Copied!" is shown.
func (c *CopyIndicator) IsVisible() bool {
	return c.visible
}

// Seq returns the sequence number of the latest Show.
func (c *CopyIndicator) Seq() int {
	return c.seq
}

// View renders the label, or nothing when hidden.
func (c *CopyIndicator) View() string {
	if !c.visible {
		return ""
	}
	return "Copied!"
}
