package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/dbmrq/pocket/internal/config"
)

// newTestRoot creates a fresh command hierarchy for testing.
// This is necessary because Cobra commands maintain state between runs.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "pocket",
		Short:         "A card carousel and a month calendar in your terminal",
		Long:          "Pocket shows a swipeable payment-card carousel and a draggable month calendar.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = "test"
	root.SetVersionTemplate("pocket {{.Version}}\n")
	root.PersistentFlags().StringP("config", "c", "", "Config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	card := &cobra.Command{
		Use:   "card",
		Short: "Show the card carousel",
		RunE:  runCard,
	}
	card.Flags().BoolP("print", "p", false, "Print one frame and exit")
	root.AddCommand(card)

	cal := &cobra.Command{
		Use:   "calendar",
		Short: "Show the month calendar",
		RunE:  runCalendar,
	}
	cal.Flags().BoolP("print", "p", false, "Print one frame and exit")
	cal.Flags().StringP("month", "m", "", "Starting month as YYYY-MM")
	root.AddCommand(cal)

	initC := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE:  runInit,
	}
	initC.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	root.AddCommand(initC)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	})

	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := newTestRoot()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return ansi.Strip(buf.String()), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantOutput: "Available Commands:",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantOutput: "pocket test",
		},
		{
			name:    "unknown command",
			args:    []string{"unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantOutput != "" && !strings.Contains(out, tt.wantOutput) {
				t.Errorf("Output = %q, want to contain %q", out, tt.wantOutput)
			}
		})
	}
}

func TestCardPrint(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "card", "--print")
	if err != nil {
		t.Fatalf("card --print failed: %v", err)
	}
	for _, want := range []string{"Welcome", "Şeyma,", "TR37 **** **** 1234", "Personal Card"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "September") {
		t.Error("card --print should not render the calendar")
	}
}

func TestCalendarPrint(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default month", []string{"calendar", "--print"}, "September 2024"},
		{"month flag", []string{"calendar", "--print", "--month", "2025-02"}, "February 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Output should contain %q, got:\n%s", tt.want, out)
			}
			if strings.Contains(out, "Welcome") {
				t.Error("calendar --print should not render the card")
			}
		})
	}
}

func TestCalendarInvalidMonth(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "calendar", "--print", "--month", "September")
	if err == nil {
		t.Fatal("An invalid --month should fail")
	}
	if msg := formatError(err); !strings.Contains(msg, "YYYY-MM") {
		t.Errorf("Error should suggest the month format, got %q", msg)
	}
}

func TestPrintWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pocket.yaml")
	cfg := config.NewConfig()
	cfg.Card.DisplayName = "Deniz"
	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := execute(t, "card", "--print", "--config", path)
	if err != nil {
		t.Fatalf("card --print failed: %v", err)
	}
	if !strings.Contains(out, "Deniz,") {
		t.Errorf("Output should use the config file, got:\n%s", out)
	}
}

func TestMissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, "card", "--print", "--config", path)
	if err == nil {
		t.Fatal("An explicit missing config should fail")
	}
	msg := formatError(err)
	if !strings.Contains(msg, "not found") || !strings.Contains(msg, "pocket init") {
		t.Errorf("Error should explain how to create the config, got %q", msg)
	}
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocket.yaml")
	data := "card:\n  card_number: \"TR37 1234\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := execute(t, "card", "--print", "--config", path)
	if err == nil {
		t.Fatal("A card number with two groups should fail")
	}
	if msg := formatError(err); !strings.Contains(msg, "card_number") {
		t.Errorf("Error should name the field, got %q", msg)
	}
}

func TestInitCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, config.DefaultConfigPath) {
		t.Errorf("Output should name the created file, got %q", out)
	}

	cfg, err := config.Load(config.DefaultConfigPath)
	if err != nil {
		t.Fatalf("Written config should load: %v", err)
	}
	if cfg.Card.DisplayName != config.DefaultDisplayName {
		t.Errorf("Written config should hold the defaults, got %q", cfg.Card.DisplayName)
	}

	if _, err := execute(t, "init"); err == nil {
		t.Error("init should refuse to overwrite an existing config")
	}
	if _, err := execute(t, "init", "--force"); err != nil {
		t.Errorf("init --force should overwrite: %v", err)
	}
}

func TestInitCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pocket.yaml")

	if _, err := execute(t, "init", "--config", path); err != nil {
		t.Fatalf("init --config failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Config should be written to %s: %v", path, err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "pocket "+Version) || !strings.Contains(out, "OS/Arch:") {
		t.Errorf("Output should show the version details, got %q", out)
	}
}

func TestRootHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Root().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"card", "calendar", "init", "version"} {
		if !names[want] {
			t.Errorf("Root should register %q", want)
		}
	}
	for _, flag := range []string{"config", "verbose"} {
		if Root().PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Root should have the --%s flag", flag)
		}
	}
}
