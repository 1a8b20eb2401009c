package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/pocket/internal/config"
	pocketerrors "github.com/dbmrq/pocket/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write the default configuration to .pocket/config.yaml, or to the
path given with --config.

Use --force to overwrite an existing file.

Examples:
  pocket init          # Create .pocket/config.yaml
  pocket init --force  # Overwrite the existing config`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return pocketerrors.WithSuggestion(
			pocketerrors.ErrConfig,
			fmt.Sprintf("config file already exists: %s", path),
			"Use --force to overwrite it",
		)
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("Edit it to change the cards and the calendar; running widgets reload it on save.")
	return nil
}
