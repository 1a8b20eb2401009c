// Package tui provides the terminal user interface for pocket.
package tui

import (
	"github.com/dbmrq/pocket/internal/config"
)

// Message types for TUI state updates.
// These are sent to the TUI from outside the update loop.

// ConfigReloadedMsg carries the result of reloading the config file.
// Err is set when the new file could not be loaded; Config is then nil.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// QuitMsg signals the TUI to quit.
type QuitMsg struct{}
