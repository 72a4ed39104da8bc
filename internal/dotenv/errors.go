package dotenv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeaderLine is wrapped by a ParseError for a line before the
	// first key that is neither blank, a comment, nor KEY=VALUE.
	ErrInvalidHeaderLine = errors.New("invalid line before first key (must be comment or blank)")

	// ErrInvalidLine is wrapped by a ParseError for a line after the first key
	// that is neither blank, a comment, nor KEY=VALUE.
	ErrInvalidLine = errors.New("invalid line (must be KEY=VALUE, comment, or blank)")
)

// ParseError reports the line that aborted a parse.
type ParseError struct {
	Line           string // raw line text
	LineNumber     int    // 1-based
	BeforeFirstKey bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.LineNumber, e.Unwrap(), e.Line)
}

func (e *ParseError) Unwrap() error {
	if e.BeforeFirstKey {
		return ErrInvalidHeaderLine
	}
	return ErrInvalidLine
}
