package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dbmrq/pocket/internal/calendar"
	pocketerrors "github.com/dbmrq/pocket/internal/errors"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".pocket/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "POCKET"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, DefaultConfigPath is used and a missing file yields the
// built-in defaults. A missing file at an explicit path is an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, &LoadError{
				Path:    path,
				Message: "config file not found",
				Err:     pocketerrors.ConfigNotFound(path).WithCause(err),
			}
		}
		return l.finish(cfg, path)
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     pocketerrors.ConfigParseError(path, err),
		}
	}

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     pocketerrors.ConfigParseError(path, err),
		}
	}

	return l.finish(cfg, path)
}

func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "invalid environment override",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .pocket/config.yaml in the specified directory.
// The file must exist.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	return l.LoadConfig(filepath.Join(dir, DefaultConfigPath))
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	// Card input
	if v := os.Getenv(EnvPrefix + "_CARD_DISPLAY_NAME"); v != "" {
		cfg.Card.DisplayName = v
	}
	if v := os.Getenv(EnvPrefix + "_CARD_BALANCE"); v != "" {
		cfg.Card.Balance = v
	}
	if v := os.Getenv(EnvPrefix + "_CARD_AVAILABLE_BALANCE"); v != "" {
		cfg.Card.AvailableBalance = v
	}
	if v := os.Getenv(EnvPrefix + "_CARD_CARD_NUMBER"); v != "" {
		cfg.Card.CardNumber = v
	}

	// Calendar
	if v := os.Getenv(EnvPrefix + "_CALENDAR_MONTH"); v != "" {
		m, err := calendar.ParseMonth(v)
		if err != nil {
			return pocketerrors.ConfigValidationError("calendar.month", err.Error(), nil)
		}
		cfg.Calendar.Month = m
	}
	if v := os.Getenv(EnvPrefix + "_CALENDAR_SUMMARY"); v != "" {
		cfg.Calendar.Summary = v
	}

	// Gestures
	if v := os.Getenv(EnvPrefix + "_GESTURE_CAROUSEL_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Gesture.CarouselThreshold = f
		}
	}
	if v := os.Getenv(EnvPrefix + "_GESTURE_CALENDAR_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Gesture.CalendarThreshold = f
		}
	}

	if v := os.Getenv(EnvPrefix + "_CLIPBOARD_INDICATOR"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Clipboard.Indicator = d
		}
	}

	// Logging
	if v := os.Getenv(EnvPrefix + "_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_JSON"); v != "" {
		cfg.Logging.JSON = parseBool(v)
	}

	return nil
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook composes the standard mapstructure hooks. Month values
// decode through encoding.TextUnmarshaler. Lists from the file replace the
// defaults instead of merging into them.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.ZeroFields = true
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Format renders the error for the terminal, including the suggestion of
// the first typed error it wraps.
func (e *LoadError) Format() string {
	var ve ValidationErrors
	if errors.As(e.Err, &ve) {
		var b strings.Builder
		fmt.Fprintf(&b, "Error: %s: %s\n", e.Path, e.Message)
		for _, v := range ve {
			if v.Err != nil {
				b.WriteString(v.Err.Format())
			} else {
				fmt.Fprintf(&b, "Error: %s\n", v.Error())
			}
		}
		return b.String()
	}
	return pocketerrors.FormatAny(e.Err)
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, it uses DefaultConfigPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
