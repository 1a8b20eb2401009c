// Package clipboard copies text to the system clipboard from inside the
// Bubble Tea update loop.
package clipboard

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	pocketerrors "github.com/dbmrq/pocket/internal/errors"
	"github.com/dbmrq/pocket/internal/logging"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// Func adapts a function to Writer.
type Func func(text string) error

// WriteAll calls f(text).
func (f Func) WriteAll(text string) error {
	return f(text)
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return pocketerrors.New(pocketerrors.ErrClipboard, "no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// System returns a Writer backed by the operating system clipboard.
func System() Writer {
	return systemWriter{}
}

// CopiedMsg reports a successful copy.
type CopiedMsg struct {
	Text string
}

// CopyFailedMsg reports a failed copy. Err has already been logged.
type CopyFailedMsg struct {
	Err error
}

// Copy returns a command that writes text with w. Failures are logged and
// reported as CopyFailedMsg rather than returned.
func Copy(w Writer, text string) tea.Cmd {
	return func() tea.Msg {
		if err := w.WriteAll(text); err != nil {
			wrapped := pocketerrors.ClipboardUnavailable(err)
			logging.Error("failed to copy", "error", wrapped)
			return CopyFailedMsg{Err: wrapped}
		}
		logging.Debug("copied to clipboard", "length", len(text))
		return CopiedMsg{Text: text}
	}
}
