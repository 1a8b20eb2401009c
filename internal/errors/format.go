package errors

import "fmt"

// Display and clipboard error constructors.

// InvalidCardNumber creates an error for a card number that does not have
// the four space-separated groups the masked display needs.
func InvalidCardNumber(number string, groups int) *PocketError {
	return &PocketError{
		Kind:    ErrInvalidFormat,
		Message: fmt.Sprintf("card number has %d group(s), need at least 4", groups),
		Details: map[string]string{
			"card_number": number,
		},
		Suggestion: `Write the card number as four space-separated groups, e.g.
    card_number: "TR37 1234 7653 1234"`,
	}
}

// InvalidBalance creates an error for a balance too short to split into
// the main amount and the two trailing cent digits.
func InvalidBalance(balance string) *PocketError {
	return &PocketError{
		Kind:    ErrInvalidFormat,
		Message: fmt.Sprintf("balance %q is shorter than two characters", balance),
		Details: map[string]string{
			"balance": balance,
		},
		Suggestion: `The last two characters of the balance are shown as cents, e.g.
    balance: "100.500,00"`,
	}
}

// ClipboardUnavailable wraps a failed clipboard write.
func ClipboardUnavailable(cause error) *PocketError {
	return &PocketError{
		Kind:    ErrClipboard,
		Message: "failed to copy to clipboard",
		Cause:   cause,
		Suggestion: `On Linux, install xclip, xsel or wl-clipboard.
  Over SSH the system clipboard is usually not reachable.`,
	}
}
