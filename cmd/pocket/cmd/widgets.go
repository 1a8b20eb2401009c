package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dbmrq/pocket/internal/config"
	"github.com/dbmrq/pocket/internal/logging"
	"github.com/dbmrq/pocket/internal/tui"
)

// runWidgets loads the configuration and shows the widgets of mode, either
// interactively or, with --print, as one static frame. adjust may change the
// loaded config before the widgets are built.
func runWidgets(cmd *cobra.Command, mode tui.Mode, adjust func(*config.Config) error) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	printOnly := false
	if cmd.Flags().Lookup("print") != nil {
		printOnly, _ = cmd.Flags().GetBool("print")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if adjust != nil {
		if err := adjust(cfg); err != nil {
			return err
		}
	}

	if printOnly {
		return printFrame(cmd, mode, cfg)
	}

	// Initialize logging
	logConfig := cfg.Logging.LoggerConfig()
	if verbose {
		logConfig.Level = logging.LevelDebug
	}
	logConfig.Console = false // Don't mix console output with TUI
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
	}

	sessionID := uuid.NewString()
	logging.Info("pocket starting",
		"version", Version,
		"mode", mode.String(),
		"session_id", sessionID,
		"verbose", verbose)

	model, err := tui.New(tui.Options{
		Mode:      mode,
		Config:    cfg,
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}

	watchPath := configPath
	if watchPath == "" {
		watchPath = config.DefaultConfigPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.NewRunner(model, watchPath).Run(ctx)
}

// printFrame writes one frame of the widgets to stdout.
func printFrame(cmd *cobra.Command, mode tui.Mode, cfg *config.Config) error {
	model, err := tui.New(tui.Options{
		Mode:   mode,
		Config: cfg,
		Logger: logging.NewNoop(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), model.Frame())
	return err
}
