// Package styles provides Lip Gloss styles for the pocket TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	// Primary colors
	Primary     = lipgloss.Color("#3B82F6") // Blue
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Dim         = lipgloss.Color("#4B5563") // Out-of-month days
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray

	// HighlightBackground marks the highlighted day.
	HighlightBackground = lipgloss.Color("#3A3A3C")
	// CardForeground is the text color on a card face.
	CardForeground = lipgloss.Color("#FFFFFF")
	// ActiveDot and InactiveDot color the pagination dots.
	ActiveDot   = lipgloss.Color("#F9FAFB")
	InactiveDot = lipgloss.Color("#4B5563")
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)
)

// Box styles.
var (
	// BoxStyle frames a widget without focus.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle frames the focused widget.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Card styles.
var (
	// GreetingStyle is for the "Welcome" line above the name.
	GreetingStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// NameStyle is for the card holder's name.
	NameStyle = lipgloss.NewStyle().
			Bold(true)

	// ActionStyle is for the decorative action row below the card.
	ActionStyle = lipgloss.NewStyle().
			Foreground(MutedLight)
)

// Calendar styles.
var (
	// MonthStyle is for the month name.
	MonthStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// YearStyle is for the year next to the month name.
	YearStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// WeekdayStyle is for the SUN..SAT header row.
	WeekdayStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Align(lipgloss.Center)

	// SummaryStyle is for the text on the right of the month title.
	SummaryStyle = lipgloss.NewStyle().
			Foreground(MutedLight)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
