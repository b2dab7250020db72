package rparse

import (
	"strings"

	"github.com/shapestone/shape-rparse/internal/parser"
)

// Options configures a Parser.
type Options struct {
	// Delimiter separates fields. It may be longer than one character.
	// It must not be empty or contain CR, LF or a double quote.
	// Default: ","
	Delimiter string

	// HasHeaders marks the first row as column names.
	// Default: false
	HasHeaders bool

	// DropEmptyFields discards fields that are empty after trimming, so
	// "a,,b" yields two fields instead of three.
	// Default: false
	DropEmptyFields bool

	// WarningCallback is invoked for non-fatal anomalies, such as a data row
	// with more fields than the header row. If nil, warnings are ignored.
	WarningCallback WarningHandler
}

// DefaultOptions returns the default parser configuration.
func DefaultOptions() Options {
	return Options{
		Delimiter:       ",",
		HasHeaders:      false,
		DropEmptyFields: false,
	}
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Delimiter == "" {
		return &OptionsError{Field: "Delimiter", Message: "delimiter must not be empty"}
	}
	if strings.ContainsAny(o.Delimiter, "\r\n") {
		return &OptionsError{Field: "Delimiter", Message: "delimiter must not contain a line terminator"}
	}
	if strings.Contains(o.Delimiter, `"`) {
		return &OptionsError{Field: "Delimiter", Message: "delimiter must not contain a quote"}
	}
	return nil
}

// parserOptions maps public options onto the internal parser.
func (o Options) parserOptions() parser.Options {
	return parser.Options{
		Delimiter:       o.Delimiter,
		DropEmptyFields: o.DropEmptyFields,
	}
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "rparse: invalid " + e.Field + ": " + e.Message
}
