// Package components provides the widgets and chrome of the pocket TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/pocket/internal/palette"
	"github.com/dbmrq/pocket/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	DisplayName string
	// Accent is the color family of the active card.
	Accent    string
	Month     string
	SessionID string
}

// Header displays the title bar of the program.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			DisplayName: "-",
			Month:       "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("POCKET")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	content := title + sep +
		styles.HeaderLabelStyle.Render("Holder: ") +
		styles.HeaderValueStyle.Render(h.data.DisplayName)

	if h.data.Accent != "" {
		swatch := lipgloss.NewStyle().
			Foreground(palette.Color(h.data.Accent)).
			Render("■ " + h.data.Accent)
		content += sep + styles.HeaderLabelStyle.Render("Card: ") + swatch
	}

	content += sep + styles.HeaderLabelStyle.Render("Month: ") +
		styles.HeaderValueStyle.Render(h.data.Month)

	if h.data.SessionID != "" {
		short := h.data.SessionID
		if len(short) > 8 {
			short = short[:8]
		}
		content += sep + styles.HeaderLabelStyle.Render("Session: ") +
			styles.HeaderValueStyle.Render(short)
	}

	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}
	return headerStyle.Render(content)
}
