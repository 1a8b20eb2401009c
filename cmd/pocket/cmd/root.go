// Package cmd provides the CLI commands for pocket.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/pocket/internal/config"
	pocketerrors "github.com/dbmrq/pocket/internal/errors"
	"github.com/dbmrq/pocket/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pocket",
	Short: "A card carousel and a month calendar in your terminal",
	Long: `Pocket shows a swipeable payment-card carousel and a draggable month
calendar side by side.

Drag a card left or right to change cards, click a dot to jump to a card,
and click the card number to copy it. Drag the calendar up or down to change
months. Settings are read from .pocket/config.yaml and reloaded on change.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default .pocket/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// runRoot shows both widgets.
func runRoot(cmd *cobra.Command, args []string) error {
	return runWidgets(cmd, tui.ModeBoth, nil)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("pocket {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// formatError renders err for the terminal, with suggestions when known.
func formatError(err error) string {
	var le *config.LoadError
	if errors.As(err, &le) {
		return le.Format()
	}
	return pocketerrors.FormatAny(err)
}
