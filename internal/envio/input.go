package envio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrMissingInput is returned when no file was named and stdin is a terminal.
var ErrMissingInput = errors.New("missing file or stdin")

// ReadInput returns the contents of path, or all of stdin when path is empty.
// Stdin is only read when something is piped into it.
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}

	if stdin == nil || IsTerminal(stdin) {
		return "", ErrMissingInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// IsTerminal reports whether r is attached to a terminal. Readers without a
// file descriptor are never terminals.
func IsTerminal(r any) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
