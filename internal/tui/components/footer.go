package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/pocket/internal/tui/styles"
)

// Footer shows the short help of the current key map and a status message.
type Footer struct {
	help    help.Model
	keys    help.KeyMap
	message string
	isError bool
	width   int
}

// NewFooter creates a footer for keys.
func NewFooter(keys help.KeyMap) *Footer {
	h := help.New()
	h.Styles.ShortKey = styles.KeyStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.ShortSeparator = " │ "
	return &Footer{help: h, keys: keys}
}

// SetKeyMap replaces the key map whose short help is shown.
func (f *Footer) SetKeyMap(keys help.KeyMap) {
	f.keys = keys
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.Width = width
}

// SetMessage shows a status message after the shortcuts.
func (f *Footer) SetMessage(message string, isError bool) {
	f.message = message
	f.isError = isError
}

// Message returns the current status message.
func (f *Footer) Message() string {
	return f.message
}

// View renders the footer on a single line.
func (f *Footer) View() string {
	line := f.help.View(f.keys)
	if f.message != "" {
		style := styles.SuccessTextStyle
		if f.isError {
			style = styles.ErrorTextStyle
		}
		line += "  " + style.Render(f.message)
	}
	if f.width > 0 {
		line = ansi.Truncate(line, max(f.width-2, 1), "…")
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(line)
}
