package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedLine indicates the token stream ended before the line sentinel.
	ErrUnterminatedLine = errors.New("line ended before its terminator")

	// ErrUnexpectedToken indicates the tokenizer produced a token kind the extractor does not know.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// MalformedRowError reports the physical line on which field extraction failed.
type MalformedRowError struct {
	// Line is the 1-indexed physical line number.
	Line int
	// Column is the 1-indexed rune column of the offending token.
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *MalformedRowError) Unwrap() error {
	return e.Err
}
