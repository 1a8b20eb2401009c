// Package config provides the configuration of the pocket widgets.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dbmrq/pocket/internal/calendar"
	pocketerrors "github.com/dbmrq/pocket/internal/errors"
	"github.com/dbmrq/pocket/internal/format"
	"github.com/dbmrq/pocket/internal/gesture"
	"github.com/dbmrq/pocket/internal/logging"
	"github.com/dbmrq/pocket/internal/palette"
)

// Config represents the complete pocket configuration loaded from .pocket/config.yaml.
type Config struct {
	Card      CardConfig      `mapstructure:"card"      yaml:"card"`
	Calendar  CalendarConfig  `mapstructure:"calendar"  yaml:"calendar"`
	Gesture   GestureConfig   `mapstructure:"gesture"   yaml:"gesture"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// CardEntry is one card of the carousel.
type CardEntry struct {
	// Color is a Tailwind-style tag such as "bg-blue-500".
	Color string `mapstructure:"color" yaml:"color"`
}

// CardConfig is the input of the card carousel. All strings are shown as
// written apart from the card number mask and the balance cents split.
type CardConfig struct {
	DisplayName      string      `mapstructure:"display_name"      yaml:"display_name"`
	Cards            []CardEntry `mapstructure:"cards"             yaml:"cards"`
	Balance          string      `mapstructure:"balance"           yaml:"balance"`
	AvailableBalance string      `mapstructure:"available_balance" yaml:"available_balance"`
	CardNumber       string      `mapstructure:"card_number"       yaml:"card_number"`
}

// MarkerEntry annotates one day of the month.
type MarkerEntry struct {
	Day   int    `mapstructure:"day"   yaml:"day"`
	Glyph string `mapstructure:"glyph" yaml:"glyph"`
	// Color is a palette family; empty uses the text color.
	Color string `mapstructure:"color" yaml:"color,omitempty"`
}

// CalendarConfig configures the month widget.
type CalendarConfig struct {
	// Month is the month shown at startup.
	Month calendar.Month `mapstructure:"month" yaml:"month"`
	// Markers are drawn under in-month days.
	Markers []MarkerEntry `mapstructure:"markers" yaml:"markers"`
	// HighlightDay gets a background on in-month cells; 0 disables it.
	HighlightDay int `mapstructure:"highlight_day" yaml:"highlight_day"`
	// Summary is shown on the right of the month title.
	Summary string `mapstructure:"summary" yaml:"summary"`
}

// GestureConfig configures drag handling. Distances are in abstract units.
type GestureConfig struct {
	CarouselThreshold float64 `mapstructure:"carousel_threshold" yaml:"carousel_threshold"`
	CalendarThreshold float64 `mapstructure:"calendar_threshold" yaml:"calendar_threshold"`
	// CellWidth and CellHeight convert terminal cells into units.
	CellWidth  float64 `mapstructure:"cell_width"  yaml:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height" yaml:"cell_height"`
}

// ClipboardConfig configures the copy indicator.
type ClipboardConfig struct {
	// Indicator is how long "Copied!" stays visible.
	Indicator time.Duration `mapstructure:"indicator" yaml:"indicator"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level    string        `mapstructure:"level"     yaml:"level"`
	Dir      string        `mapstructure:"dir"       yaml:"dir"`
	MaxFiles int           `mapstructure:"max_files" yaml:"max_files"`
	MaxAge   time.Duration `mapstructure:"max_age"   yaml:"max_age"`
	JSON     bool          `mapstructure:"json"      yaml:"json"`
}

// Default values.
const (
	DefaultDisplayName      = "Şeyma"
	DefaultBalance          = "100.500,00"
	DefaultAvailableBalance = "120,000,00 USD"
	DefaultCardNumber       = "TR37 1234 7653 1234"
	DefaultHighlightDay     = 4
	DefaultSummary          = "$77.15"
	DefaultIndicator        = 3 * time.Second
	DefaultLogDir           = ".pocket/logs"
	DefaultMaxLogFiles      = 10
	DefaultMaxLogAge        = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Card: CardConfig{
			DisplayName: DefaultDisplayName,
			Cards: []CardEntry{
				{Color: "bg-blue-500"},
				{Color: "bg-green-500"},
				{Color: "bg-red-500"},
				{Color: "bg-orange-500"},
			},
			Balance:          DefaultBalance,
			AvailableBalance: DefaultAvailableBalance,
			CardNumber:       DefaultCardNumber,
		},
		Calendar: CalendarConfig{
			Month:        calendar.DefaultMonth,
			Markers:      markerEntries(calendar.DefaultMarkers()),
			HighlightDay: DefaultHighlightDay,
			Summary:      DefaultSummary,
		},
		Gesture: GestureConfig{
			CarouselThreshold: gesture.DefaultCarouselThreshold,
			CalendarThreshold: gesture.DefaultCalendarThreshold,
			CellWidth:         gesture.DefaultCellWidth,
			CellHeight:        gesture.DefaultCellHeight,
		},
		Clipboard: ClipboardConfig{
			Indicator: DefaultIndicator,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
	}
}

// ApplyDefaults fills unset fields after loading a partial file.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Card.DisplayName == "" {
		c.Card.DisplayName = defaults.Card.DisplayName
	}
	if len(c.Card.Cards) == 0 {
		c.Card.Cards = defaults.Card.Cards
	}
	if c.Card.Balance == "" {
		c.Card.Balance = defaults.Card.Balance
	}
	if c.Card.CardNumber == "" {
		c.Card.CardNumber = defaults.Card.CardNumber
	}

	if c.Calendar.Month.IsZero() {
		c.Calendar.Month = defaults.Calendar.Month
	}
	if c.Calendar.Markers == nil {
		c.Calendar.Markers = defaults.Calendar.Markers
	}

	if c.Gesture.CarouselThreshold == 0 {
		c.Gesture.CarouselThreshold = defaults.Gesture.CarouselThreshold
	}
	if c.Gesture.CalendarThreshold == 0 {
		c.Gesture.CalendarThreshold = defaults.Gesture.CalendarThreshold
	}
	if c.Gesture.CellWidth == 0 {
		c.Gesture.CellWidth = defaults.Gesture.CellWidth
	}
	if c.Gesture.CellHeight == 0 {
		c.Gesture.CellHeight = defaults.Gesture.CellHeight
	}

	if c.Clipboard.Indicator == 0 {
		c.Clipboard.Indicator = defaults.Clipboard.Indicator
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaults.Logging.Dir
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	// Err is the typed error with a suggestion for the user.
	Err *pocketerrors.PocketError
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap returns the typed error.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Unwrap exposes every validation error to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

func formatError(field, message string, err error) *ValidationError {
	var pe *pocketerrors.PocketError
	if !errors.As(err, &pe) {
		pe = pocketerrors.Wrap(err, pocketerrors.ErrInvalidFormat, message)
	}
	return &ValidationError{Field: field, Message: message, Err: pe}
}

func invalid(field, message string, options []string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     pocketerrors.ConfigValidationError(field, message, options),
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	// Card input
	if strings.TrimSpace(c.Card.DisplayName) == "" {
		errs = append(errs, invalid("card.display_name", "must not be empty", nil))
	}
	if len(c.Card.Cards) == 0 {
		errs = append(errs, invalid("card.cards", "must list at least one card", nil))
	}
	for i, card := range c.Card.Cards {
		field := fmt.Sprintf("card.cards[%d].color", i)
		if strings.TrimSpace(card.Color) == "" {
			errs = append(errs, invalid(field, "must not be empty", nil))
			continue
		}
		family := format.ColorFamily(card.Color)
		if _, ok := palette.Lookup(family); !ok {
			errs = append(errs, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unknown color %q", card.Color),
				Err:     pocketerrors.UnknownColorTag(field, card.Color, family, palette.Known()),
			})
		}
	}
	if _, err := format.FormatCardNumber(c.Card.CardNumber); err != nil {
		errs = append(errs, formatError("card.card_number", "must have four space-separated groups", err))
	}
	if _, _, err := format.FormatBalance(c.Card.Balance); err != nil {
		errs = append(errs, formatError("card.balance", "must have at least two characters", err))
	}

	// Calendar
	for i, m := range c.Calendar.Markers {
		field := fmt.Sprintf("calendar.markers[%d]", i)
		if m.Day < 1 || m.Day > 31 {
			errs = append(errs, invalid(field+".day", "must be between 1 and 31", nil))
		}
		if m.Glyph == "" {
			errs = append(errs, invalid(field+".glyph", "must not be empty", nil))
		}
		if m.Color != "" {
			if _, ok := palette.Lookup(m.Color); !ok {
				errs = append(errs, &ValidationError{
					Field:   field + ".color",
					Message: fmt.Sprintf("unknown color %q", m.Color),
					Err:     pocketerrors.UnknownColorTag(field+".color", m.Color, m.Color, palette.Known()),
				})
			}
		}
	}
	if c.Calendar.HighlightDay < 0 || c.Calendar.HighlightDay > 31 {
		errs = append(errs, invalid("calendar.highlight_day", "must be between 0 and 31", nil))
	}

	// Gestures
	if c.Gesture.CarouselThreshold < 0 {
		errs = append(errs, invalid("gesture.carousel_threshold", "must be non-negative", nil))
	}
	if c.Gesture.CalendarThreshold < 0 {
		errs = append(errs, invalid("gesture.calendar_threshold", "must be non-negative", nil))
	}
	if c.Gesture.CellWidth <= 0 {
		errs = append(errs, invalid("gesture.cell_width", "must be positive", nil))
	}
	if c.Gesture.CellHeight <= 0 {
		errs = append(errs, invalid("gesture.cell_height", "must be positive", nil))
	}

	if c.Clipboard.Indicator < 0 {
		errs = append(errs, invalid("clipboard.indicator", "must be non-negative", nil))
	}

	// Logging
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, invalid("logging.level", err.Error(), []string{"debug", "info", "warn", "error"}))
	}
	if c.Logging.MaxFiles < 0 {
		errs = append(errs, invalid("logging.max_files", "must be non-negative", nil))
	}
	if c.Logging.MaxAge < 0 {
		errs = append(errs, invalid("logging.max_age", "must be non-negative", nil))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkerTable returns the markers keyed by day. Later entries win.
func (c *CalendarConfig) MarkerTable() calendar.Markers {
	table := make(calendar.Markers, len(c.Markers))
	for _, m := range c.Markers {
		table[m.Day] = calendar.Marker{Glyph: m.Glyph, Color: m.Color}
	}
	return table
}

// LoggerConfig converts the logging section into a logging.Config.
// The level must already be valid.
func (c *LoggingConfig) LoggerConfig() *logging.Config {
	level, _ := logging.ParseLevel(c.Level)
	return &logging.Config{
		Level:       level,
		LogDir:      c.Dir,
		MaxLogFiles: c.MaxFiles,
		MaxLogAge:   c.MaxAge,
		JSONFormat:  c.JSON,
	}
}

func markerEntries(markers calendar.Markers) []MarkerEntry {
	entries := make([]MarkerEntry, 0, len(markers))
	for day := 1; day <= 31; day++ {
		if m, ok := markers[day]; ok {
			entries = append(entries, MarkerEntry{Day: day, Glyph: m.Glyph, Color: m.Color})
		}
	}
	return entries
}
