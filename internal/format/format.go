// Package format turns the caller-supplied card strings into their display form.
package format

import (
	"strings"

	pocketerrors "github.com/dbmrq/pocket/internal/errors"
)

// Mask replaces the hidden groups of a card number.
const Mask = "****"

// FormatCardNumber masks the second and third space-separated groups of a
// card number. Groups past the fourth are kept as written.
func FormatCardNumber(full string) (string, error) {
	parts := strings.Split(full, " ")
	if len(parts) < 4 {
		return "", pocketerrors.InvalidCardNumber(full, len(parts))
	}
	parts[1] = Mask
	parts[2] = Mask
	return strings.Join(parts, " "), nil
}

// FormatBalance splits the last two characters (the cents) off a balance.
func FormatBalance(balance string) (whole, cents string, err error) {
	runes := []rune(balance)
	if len(runes) < 2 {
		return "", "", pocketerrors.InvalidBalance(balance)
	}
	cut := len(runes) - 2
	return string(runes[:cut]), string(runes[cut:]), nil
}

// ColorFamily returns the color name of a Tailwind-style tag:
// "bg-blue-500" is "blue". A tag without dashes is returned unchanged.
func ColorFamily(tag string) string {
	parts := strings.Split(tag, "-")
	if len(parts) < 2 {
		return tag
	}
	return parts[1]
}
