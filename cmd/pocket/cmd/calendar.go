package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/pocket/internal/calendar"
	"github.com/dbmrq/pocket/internal/config"
	pocketerrors "github.com/dbmrq/pocket/internal/errors"
	"github.com/dbmrq/pocket/internal/tui"
)

// calendarCmd represents the calendar command.
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month calendar",
	Long: `Show the month calendar on its own.

The starting month, day markers and summary come from the "calendar" section
of the config file. --month overrides the starting month.

Examples:
  pocket calendar                          # Interactive calendar
  pocket calendar --month 2025-02 --print  # Print February 2025 and exit`,
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().BoolP("print", "p", false, "Print one frame and exit")
	calendarCmd.Flags().StringP("month", "m", "", "Starting month as YYYY-MM")
}

// runCalendar is the main entry point for the calendar command.
func runCalendar(cmd *cobra.Command, args []string) error {
	month, _ := cmd.Flags().GetString("month")
	return runWidgets(cmd, tui.ModeCalendar, func(cfg *config.Config) error {
		return applyMonthFlag(cfg, month)
	})
}

// applyMonthFlag sets the starting month from --month when given.
func applyMonthFlag(cfg *config.Config, month string) error {
	if month == "" {
		return nil
	}
	m, err := calendar.ParseMonth(month)
	if err != nil {
		return pocketerrors.WithSuggestion(
			pocketerrors.ErrInvalidFormat,
			fmt.Sprintf("invalid --month %q", month),
			`Write the month as YYYY-MM, for example "2024-09"`,
		).WithCause(err)
	}
	cfg.Calendar.Month = m
	return nil
}
