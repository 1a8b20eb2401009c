package errors

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Configuration-related error constructors.

// ConfigNotFound creates an error for a config file that was explicitly
// requested but does not exist.
func ConfigNotFound(configPath string) *PocketError {
	return &PocketError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Create a configuration file with the defaults:
    pocket init

  Or run without --config to use the built-in defaults.`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *PocketError {
	return &PocketError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Quote strings containing ':' or '#'
  3. Months are written as "YYYY-MM"`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *PocketError {
	suggestion := fmt.Sprintf("Fix the %q field in .pocket/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &PocketError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// UnknownColorTag creates an error for a card color whose family is not in
// the palette. The suggestion names the closest known family.
func UnknownColorTag(field, tag, family string, known []string) *PocketError {
	err := &PocketError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("unknown card color %q", tag),
		Details: map[string]string{
			"field": field,
			"color": tag,
		},
	}

	if closest := Closest(family, known); closest != "" {
		err.Suggestion = fmt.Sprintf("Did you mean %q? Colors are written like \"bg-%s-500\".", closest, closest)
	} else if len(known) > 0 {
		err.Suggestion = fmt.Sprintf("Known colors: %s", strings.Join(known, ", "))
	}
	return err
}

// Closest returns the candidate with the smallest edit distance to word.
// Candidates further than half of word's length away are not considered.
func Closest(word string, candidates []string) string {
	best := ""
	bestDist := len(word)/2 + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(word), c)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
