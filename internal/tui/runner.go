package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/pocket/internal/config"
	"github.com/dbmrq/pocket/internal/logging"
)

// Runner runs the Bubble Tea program and forwards config file changes to it.
type Runner struct {
	model      *Model
	program    *tea.Program
	watcher    *config.Watcher
	configPath string
}

// NewRunner creates a Runner for model. When configPath is not empty the
// file is watched and every reload is sent to the program as a
// ConfigReloadedMsg. Extra program options are appended to the defaults.
func NewRunner(model *Model, configPath string, opts ...tea.ProgramOption) *Runner {
	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	r := &Runner{
		model:      model,
		program:    tea.NewProgram(model, options...),
		configPath: configPath,
	}

	if configPath != "" {
		w, err := config.NewWatcher(configPath, func(cfg *config.Config, err error) {
			r.program.Send(ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			logging.Warn("config watch disabled", "path", configPath, "error", err)
		} else {
			r.watcher = w
		}
	}

	return r
}

// Model returns the TUI model.
func (r *Runner) Model() *Model {
	return r.model
}

// Program returns the Bubble Tea program.
func (r *Runner) Program() *tea.Program {
	return r.program
}

// Run starts the program and blocks until it exits or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if r.watcher != nil {
		defer r.watcher.Stop()
		if err := r.watcher.Start(ctx); err != nil {
			logging.Warn("config watch disabled", "path", r.configPath, "error", err)
		}
	}

	go func() {
		<-ctx.Done()
		r.program.Quit()
	}()

	_, err := r.program.Run()
	return err
}
