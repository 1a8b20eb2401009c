package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings of the program. Bindings of a widget that
// is not shown are disabled.
type KeyMap struct {
	PrevCard   key.Binding
	NextCard   key.Binding
	SelectCard key.Binding
	Copy       key.Binding

	PrevMonth  key.Binding
	NextMonth  key.Binding
	ResetMonth key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the bindings for mode.
func DefaultKeyMap(mode Mode) KeyMap {
	k := KeyMap{
		PrevCard: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous card"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next card"),
		),
		SelectCard: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to card"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy number"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next month"),
		),
		ResetMonth: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "start month"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	showCard := mode != ModeCalendar
	showMonth := mode != ModeCard
	for _, b := range []*key.Binding{&k.PrevCard, &k.NextCard, &k.SelectCard, &k.Copy} {
		b.SetEnabled(showCard)
	}
	for _, b := range []*key.Binding{&k.PrevMonth, &k.NextMonth, &k.ResetMonth} {
		b.SetEnabled(showMonth)
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevCard, k.NextCard, k.Copy, k.PrevMonth, k.NextMonth, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCard, k.NextCard, k.SelectCard, k.Copy},
		{k.PrevMonth, k.NextMonth, k.ResetMonth},
		{k.Help, k.Quit},
	}
}
