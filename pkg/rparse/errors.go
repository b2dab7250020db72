package rparse

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-rparse/internal/parser"
)

// MalformedRowError reports the physical line and column at which field
// extraction failed. The whole parse is aborted when it occurs.
type MalformedRowError = parser.MalformedRowError

// Common errors
var (
	// ErrUnexpectedToken indicates the tokenizer produced a token the field
	// extractor does not recognize.
	ErrUnexpectedToken = parser.ErrUnexpectedToken

	// ErrUnterminatedLine indicates a line ended before its terminator was seen.
	ErrUnterminatedLine = parser.ErrUnterminatedLine

	// ErrRowWidth indicates a data row has fewer fields than the header row.
	ErrRowWidth = errors.New("row has fewer fields than header")

	// ErrNoHeaders indicates named records were requested from a parser built without headers.
	ErrNoHeaders = errors.New("parser was not configured with headers")
)

// FileAccessError indicates the source file could not be opened.
type FileAccessError struct {
	Path string
	Err  error
}

// Error returns a formatted error message.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the source was opened but could not be read to
// completion or is not valid text.
type DecodeError struct {
	// Path is empty when the source was an io.Reader.
	Path string
	Err  error
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot decode input: %v", e.Err)
	}
	return fmt.Sprintf("cannot decode file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RowWidthError indicates a data row is shorter than the header row during
// named-record binding.
type RowWidthError struct {
	// Row is the 1-indexed data row, not counting the header.
	Row int
	// Line is the physical line number, or 0 when unknown.
	Line int
	// Got is the number of fields in the data row.
	Got int
	// Want is the number of header fields.
	Want int
}

// Error returns a formatted error message.
func (e *RowWidthError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("data row %d on line %d: %v (got %d, expected %d)", e.Row, e.Line, ErrRowWidth, e.Got, e.Want)
	}
	return fmt.Sprintf("data row %d: %v (got %d, expected %d)", e.Row, ErrRowWidth, e.Got, e.Want)
}

// Unwrap returns ErrRowWidth so callers can use errors.Is.
func (e *RowWidthError) Unwrap() error {
	return ErrRowWidth
}

// WarningHandler is a callback function for non-fatal anomalies.
type WarningHandler func(line int, message string)
