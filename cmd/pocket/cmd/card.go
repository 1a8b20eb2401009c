package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/pocket/internal/tui"
)

// cardCmd represents the card command.
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Show the card carousel",
	Long: `Show the card carousel on its own.

Cards, balances and the card number come from the "card" section of the
config file.

Examples:
  pocket card           # Interactive carousel
  pocket card --print   # Print the first card and exit`,
	RunE: runCard,
}

func init() {
	rootCmd.AddCommand(cardCmd)

	cardCmd.Flags().BoolP("print", "p", false, "Print one frame and exit")
}

// runCard is the main entry point for the card command.
func runCard(cmd *cobra.Command, args []string) error {
	return runWidgets(cmd, tui.ModeCard, nil)
}
