package rparse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shapestone/shape-rparse/internal/parser"
)

// Table is an ordered sequence of rows in physical line order.
// When headers are enabled, Table[0] is the header row.
type Table [][]string

// NamedRecord maps header names to the fields of one data row.
type NamedRecord map[string]string

// Transform rewrites one row, given as its fields joined with the delimiter.
type Transform func(line string) string

// Parser holds the complete text of a delimited source.
//
// The text is loaded once at construction and never modified. Every read
// method re-runs extraction over that text, so results are independent
// values. A Parser is not designed for concurrent mutation; its methods only
// read immutable state.
type Parser struct {
	text string
	opts Options
}

// Open reads the file at path into memory and returns a parser for it.
//
// Example:
//
//	p, err := rparse.Open("people.csv", true, ",")
//	if err != nil {
//	    // handle error
//	}
//	records, err := p.WithHeaders()
func Open(path string, hasHeaders bool, delimiter string) (*Parser, error) {
	opts := DefaultOptions()
	opts.HasHeaders = hasHeaders
	opts.Delimiter = delimiter
	return OpenWithOptions(path, opts)
}

// OpenWithOptions reads the file at path into memory using custom options.
//
// Returns *FileAccessError if the path cannot be opened and *DecodeError if
// the content cannot be read to completion or is not valid text. The file is
// closed before OpenWithOptions returns.
func OpenWithOptions(path string, opts Options) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Err: errors.New("is a directory")}
	}

	text, err := decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &Parser{text: text, opts: opts}, nil
}

// NewParser returns a parser over text that is already in memory.
func NewParser(text string, opts Options) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Parser{text: text, opts: opts}, nil
}

// NewParserFromReader reads r to completion and returns a parser for its content.
// Byte order marks are handled the same way as in OpenWithOptions.
func NewParserFromReader(r io.Reader, opts Options) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	text, err := decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &Parser{text: text, opts: opts}, nil
}

// decode reads r fully. A UTF-8 BOM is stripped, a UTF-16 BOM switches to
// UTF-16 decoding, and anything else must be valid UTF-8.
func decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(encoding.UTF8Validator)
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Text returns the loaded source text.
func (p *Parser) Text() string {
	return p.text
}

// Delimiter returns the configured delimiter.
func (p *Parser) Delimiter() string {
	return p.opts.Delimiter
}

// HasHeaders reports whether the first row holds column names.
func (p *Parser) HasHeaders() bool {
	return p.opts.HasHeaders
}

// ReadAll returns every row of the source, including the header row if any.
// A malformed line aborts the call with a *MalformedRowError.
func (p *Parser) ReadAll() (Table, error) {
	rows, err := parser.NewParserWithOptions(p.text, p.opts.parserOptions()).Rows()
	if err != nil {
		return nil, err
	}
	return Table(rows), nil
}

// AST returns the source as a Shape AST: an *ast.ArrayDataNode of records,
// each an *ast.ArrayDataNode of *ast.LiteralNode fields.
func (p *Parser) AST() (ast.SchemaNode, error) {
	return parser.NewParserWithOptions(p.text, p.opts.parserOptions()).Parse()
}

// EachLine rejoins every row with the delimiter and passes it through fn,
// once per row and in row order. A nil fn returns the joined rows unchanged.
func (p *Parser) EachLine(fn Transform) ([]string, error) {
	table, err := p.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(table))
	for i, row := range table {
		line := strings.Join(row, p.opts.Delimiter)
		if fn != nil {
			line = fn(line)
		}
		out[i] = line
	}
	return out, nil
}

// WithHeaders binds the header row to every data row.
//
// Returns ErrNoHeaders if the parser was built without HasHeaders, and a
// *RowWidthError if a data row has fewer fields than the header row.
func (p *Parser) WithHeaders() ([]NamedRecord, error) {
	if !p.opts.HasHeaders {
		return nil, ErrNoHeaders
	}
	rows, lines, err := p.numberedRows()
	if err != nil {
		return nil, err
	}
	return bindHeaders(rows, lines, p.opts.WarningCallback)
}

// numberedRows extracts every row along with its physical line number.
func (p *Parser) numberedRows() (Table, []int, error) {
	lines := parser.SplitLines(p.text)
	rows := make(Table, 0, len(lines))
	numbers := make([]int, 0, len(lines))
	for _, line := range lines {
		fields, err := parser.ExtractFields(line, p.opts.parserOptions())
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, fields)
		numbers = append(numbers, line.Number)
	}
	return rows, numbers, nil
}

// String returns a short description for debugging.
func (p *Parser) String() string {
	return fmt.Sprintf("rparse.Parser{delimiter: %q, headers: %t, bytes: %d}",
		p.opts.Delimiter, p.opts.HasHeaders, len(p.text))
}
