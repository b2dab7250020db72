// Package rparse splits delimited text into rows and fields and binds header
// rows to data rows.
//
// The tokenizer is deliberately lightweight. Lines end at every CR and every
// LF, blank lines are dropped, fields are separated by a configurable
// delimiter, and each field is trimmed of surrounding whitespace and of one
// pair of surrounding double quotes. Quoted fields cannot protect embedded
// delimiters, line breaks or doubled quotes.
//
// # Thread Safety
//
// A Parser only reads the text it loaded at construction, so concurrent calls
// on one Parser are safe. It is not designed for concurrent mutation.
//
// # Output Forms
//
//   - Parser.ReadAll - every row as a Table
//   - Parser.WithHeaders - one NamedRecord per data row
//   - Parser.EachLine - each row rejoined and passed through a Transform
//   - Parser.AST - a Shape AST with source positions
//
// # Example:
//
//	p, err := rparse.Open("people.csv", true, ",")
//	if err != nil {
//	    // handle error
//	}
//	records, err := p.WithHeaders()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(records[0]["name"])
//
// # Errors
//
// Construction returns *FileAccessError, *DecodeError or *OptionsError.
// Extraction returns *MalformedRowError, and header binding returns
// *RowWidthError. No operation returns partial results alongside an error.
package rparse

import (
	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-rparse/internal/parser"
)

// Parse parses comma-delimited input into an AST.
//
// Returns an *ast.ArrayDataNode of records; each record is an
// *ast.ArrayDataNode of *ast.LiteralNode fields holding string values.
//
// Example:
//
//	node, err := rparse.Parse("name,age\nAlice,30")
//	records := node.(*ast.ArrayDataNode).Elements()
//	// records[0] is the header row
func Parse(input string) (ast.SchemaNode, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions parses input into an AST with custom options.
func ParseWithOptions(input string, opts Options) (ast.SchemaNode, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return parser.NewParserWithOptions(input, opts.parserOptions()).Parse()
}

// Format returns the format identifier for this parser.
func Format() string {
	return "DSV"
}

// Validate reports whether every line of input can be tokenized with opts.
// Returns nil when the input is valid.
func Validate(input string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	_, err := parser.NewParserWithOptions(input, opts.parserOptions()).Rows()
	return err
}
