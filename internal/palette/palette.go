// Package palette maps the color families used in card tags and calendar
// markers to terminal colors.
package palette

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// families holds the 500 shade of each Tailwind color family.
var families = map[string]lipgloss.Color{
	"white":   lipgloss.Color("#FFFFFF"),
	"black":   lipgloss.Color("#000000"),
	"gray":    lipgloss.Color("#6B7280"),
	"slate":   lipgloss.Color("#64748B"),
	"red":     lipgloss.Color("#EF4444"),
	"orange":  lipgloss.Color("#F97316"),
	"amber":   lipgloss.Color("#F59E0B"),
	"yellow":  lipgloss.Color("#EAB308"),
	"lime":    lipgloss.Color("#84CC16"),
	"green":   lipgloss.Color("#22C55E"),
	"emerald": lipgloss.Color("#10B981"),
	"teal":    lipgloss.Color("#14B8A6"),
	"cyan":    lipgloss.Color("#06B6D4"),
	"sky":     lipgloss.Color("#0EA5E9"),
	"blue":    lipgloss.Color("#3B82F6"),
	"indigo":  lipgloss.Color("#6366F1"),
	"violet":  lipgloss.Color("#8B5CF6"),
	"purple":  lipgloss.Color("#A855F7"),
	"fuchsia": lipgloss.Color("#D946EF"),
	"pink":    lipgloss.Color("#EC4899"),
	"rose":    lipgloss.Color("#F43F5E"),
}

// Fallback is used for unknown families.
var Fallback = lipgloss.Color("#6B7280")

// Lookup returns the color of family.
func Lookup(family string) (lipgloss.Color, bool) {
	c, ok := families[family]
	return c, ok
}

// Color returns the color of family, or Fallback.
func Color(family string) lipgloss.Color {
	if c, ok := families[family]; ok {
		return c
	}
	return Fallback
}

// Known returns the family names in alphabetical order.
func Known() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
