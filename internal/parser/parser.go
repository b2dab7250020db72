// Package parser turns delimited text into rows of fields.
//
// Parsing happens in three steps: SplitLines breaks the text into
// sentinel-terminated lines, ExtractFields runs a small state machine over the
// tokens of each line, and Parser collects the results in document order.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-rparse/internal/tokenizer"
)

// Options configures the parser behavior.
type Options struct {
	// Delimiter is the field separator. Default: ","
	Delimiter string
	// DropEmptyFields discards fields that are empty after trimming.
	DropEmptyFields bool
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Delimiter:       ",",
		DropEmptyFields: false,
	}
}

// Parser extracts rows from a complete, already loaded text.
// A Parser holds no mutable state and may be reused.
type Parser struct {
	text string
	opts Options
}

// NewParser creates a parser for the given input using default options.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultOptions().Delimiter
	}
	return &Parser{text: input, opts: opts}
}

// Lines returns the non-empty physical lines of the input.
func (p *Parser) Lines() []Line {
	return SplitLines(p.text)
}

// Rows returns every line's fields in document order.
// The first malformed line aborts the whole call.
func (p *Parser) Rows() ([][]string, error) {
	lines := p.Lines()
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		fields, err := ExtractFields(line, p.opts)
		if err != nil {
			return nil, err
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

// Parse returns the input as an AST.
//
// Returns *ast.ArrayDataNode - an array of records, where each record is an
// ArrayDataNode of LiteralNode fields. Positions carry the byte offset,
// physical line and rune column where each field starts.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	lines := p.Lines()
	records := make([]ast.SchemaNode, 0, len(lines))
	for _, line := range lines {
		spans, err := extractSpans(line, p.opts)
		if err != nil {
			return nil, err
		}
		fields := make([]ast.SchemaNode, 0, len(spans))
		for _, s := range spans {
			pos := ast.NewPosition(line.Offset+s.offset, line.Number, s.column)
			fields = append(fields, ast.NewLiteralNode(s.value, pos))
		}
		recordPos := ast.NewPosition(line.Offset, line.Number, 1)
		records = append(records, ast.NewArrayDataNode(fields, recordPos))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// ExtractFields returns the trimmed, unquoted fields of one sentinel-terminated line.
func ExtractFields(line Line, opts Options) ([]string, error) {
	spans, err := extractSpans(line, opts)
	if err != nil {
		return nil, err
	}
	fields := make([]string, len(spans))
	for i, s := range spans {
		fields[i] = s.value
	}
	return fields, nil
}

// CleanField trims surrounding whitespace and removes one leading and one
// trailing double quote.
func CleanField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}

// fieldState is a state of the field extraction machine.
type fieldState uint8

const (
	stateFieldStart fieldState = iota
	stateInUnquotedField
	stateInQuotedField
	stateAfterField
)

// String returns the state name for error messages.
func (s fieldState) String() string {
	switch s {
	case stateFieldStart:
		return "FieldStart"
	case stateInUnquotedField:
		return "InUnquotedField"
	case stateInQuotedField:
		return "InQuotedField"
	case stateAfterField:
		return "AfterField"
	default:
		return fmt.Sprintf("fieldState(%d)", uint8(s))
	}
}

// span is an extracted field plus where it started within its line.
type span struct {
	value  string
	offset int // byte offset within the line
	column int // 1-indexed rune column
}

// extractor holds the per-line state of the field machine.
type extractor struct {
	line   Line
	opts   Options
	state  fieldState
	raw    strings.Builder
	start  span
	spans  []span
	offset int
	column int
}

// extractSpans drives the field machine over the tokens of one line.
//
// Transitions:
//
//	FieldStart      Space: stay  Field: InUnquoted  DQuote: InQuoted   Delimiter/Newline: emit
//	InUnquotedField Space: stay  Field: stay        DQuote: stay       Delimiter/Newline: emit
//	InQuotedField   Space: stay  Field: stay        DQuote: AfterField Delimiter/Newline: emit
//	AfterField      Space: stay  Field: InQuoted    DQuote: AfterField Delimiter/Newline: emit
//
// Only an opening quote and a quote followed by optional space and then a
// delimiter or newline are structural. Every other quote is field content.
// A row is malformed only when the token stream itself is broken.
func extractSpans(line Line, opts Options) ([]span, error) {
	tokOpts := tokenizer.Options{Delimiter: opts.Delimiter}
	tok := tokenizer.NewTokenizerForLine(line.Text, tokOpts)

	e := &extractor{
		line:   line,
		opts:   opts,
		state:  stateFieldStart,
		spans:  make([]span, 0, 8),
		column: 1,
	}
	e.start = span{offset: 0, column: 1}

	for {
		token, ok := tok.NextToken()
		if !ok || token.Kind() == tokenizer.TokenEOF {
			return nil, e.malformed(ErrUnterminatedLine)
		}

		value := token.ValueString()
		done, err := e.step(token.Kind(), value)
		if err != nil {
			return nil, err
		}
		if done {
			return e.spans, nil
		}
		e.offset += len(value)
		e.column += utf8.RuneCountInString(value)
	}
}

// step applies one token to the machine. It reports true once the line terminator is consumed.
func (e *extractor) step(kind, value string) (bool, error) {
	switch kind {
	case tokenizer.TokenSpace:
		e.raw.WriteString(value)

	case tokenizer.TokenField, tokenizer.TokenDQuote:
		isQuote := kind == tokenizer.TokenDQuote
		switch e.state {
		case stateFieldStart:
			if isQuote {
				e.state = stateInQuotedField
			} else {
				e.state = stateInUnquotedField
			}
		case stateInQuotedField:
			if isQuote {
				e.state = stateAfterField
			}
		case stateAfterField:
			// The quote before this token did not close the field.
			e.state = stateInQuotedField
			if isQuote {
				e.state = stateAfterField
			}
		}
		e.raw.WriteString(value)

	case tokenizer.TokenDelimiter:
		e.emit()
		// The next field starts after the delimiter.
		e.start = span{
			offset: e.offset + len(value),
			column: e.column + utf8.RuneCountInString(value),
		}

	case tokenizer.TokenNewline:
		e.emit()
		return true, nil

	default:
		return false, e.malformed(fmt.Errorf("%w %s in state %s", ErrUnexpectedToken, kind, e.state))
	}
	return false, nil
}

// emit closes the current field and resets the machine to FieldStart.
func (e *extractor) emit() {
	value := CleanField(e.raw.String())
	e.raw.Reset()
	e.state = stateFieldStart
	if value == "" && e.opts.DropEmptyFields {
		return
	}
	e.spans = append(e.spans, span{value: value, offset: e.start.offset, column: e.start.column})
}

// malformed builds an error at the machine's current position.
func (e *extractor) malformed(err error) error {
	return &MalformedRowError{
		Line:   e.line.Number,
		Column: e.column,
		Err:    err,
	}
}
