package rparse

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Document is a parsed source split into an optional header row and data rows.
type Document struct {
	headers    []string
	hasHeaders bool
	records    [][]string
}

// Record is one data row with access by position or by header name.
type Record struct {
	fields  []string
	headers []string
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{
		headers: []string{},
		records: make([][]string, 0),
	}
}

// Document returns the parsed source as a Document. When the parser was
// built with HasHeaders, the first row becomes the document's headers.
func (p *Parser) Document() (*Document, error) {
	table, err := p.ReadAll()
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	rows := [][]string(table)
	if p.opts.HasHeaders && len(rows) > 0 {
		doc.SetHeaders(rows[0])
		rows = rows[1:]
	}
	for _, row := range rows {
		doc.AddRecord(row)
	}
	return doc, nil
}

// SetHeaders sets the column headers and returns the Document for chaining.
// An empty header row still counts as a row in Table and Render.
func (d *Document) SetHeaders(headers []string) *Document {
	d.headers = headers
	d.hasHeaders = true
	return d
}

// AddRecord appends a data row and returns the Document for chaining.
func (d *Document) AddRecord(fields []string) *Document {
	d.records = append(d.records, fields)
	return d
}

// HasHeaders reports whether a header row was set.
func (d *Document) HasHeaders() bool {
	return d.hasHeaders
}

// Headers returns the column headers, or an empty slice if none are set.
func (d *Document) Headers() []string {
	return d.headers
}

// Records returns all data rows.
func (d *Document) Records() []Record {
	records := make([]Record, len(d.records))
	for i, fields := range d.records {
		records[i] = Record{fields: fields, headers: d.headers}
	}
	return records
}

// RecordCount returns the number of data rows, not counting the header.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// GetRecord returns the 0-indexed data row, or false if out of range.
func (d *Document) GetRecord(index int) (Record, bool) {
	if index < 0 || index >= len(d.records) {
		return Record{}, false
	}
	return Record{fields: d.records[index], headers: d.headers}, true
}

// Table returns the header row (if set) followed by the data rows.
func (d *Document) Table() Table {
	table := make(Table, 0, len(d.records)+1)
	if d.hasHeaders {
		table = append(table, d.headers)
	}
	return append(table, d.records...)
}

// Render joins each row with delimiter and terminates it with a line feed.
// Fields are written as-is: a field containing delimiter will not survive a
// re-parse.
func (d *Document) Render(delimiter string) string {
	var sb strings.Builder
	for _, row := range d.Table() {
		sb.WriteString(strings.Join(row, delimiter))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Get returns the 0-indexed field, or false if out of range.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName returns the field under the named header.
// With duplicate header names the last matching column wins, the same as in
// named records.
func (r Record) GetByName(name string) (string, bool) {
	for i := len(r.headers) - 1; i >= 0; i-- {
		if r.headers[i] == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Map returns the record as a NamedRecord. Fields without a header are
// omitted and headers without a field map to "".
func (r Record) Map() NamedRecord {
	m := make(NamedRecord, len(r.headers))
	for i, h := range r.headers {
		v, _ := r.Get(i)
		m[h] = v
	}
	return m
}

// Fields returns a copy of the record's fields.
func (r Record) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// ToAST converts the Document to an AST ArrayDataNode, headers first.
func (d *Document) ToAST() *ast.ArrayDataNode {
	rows := d.Table()
	records := make([]ast.SchemaNode, len(rows))
	for i, row := range rows {
		fields := make([]ast.SchemaNode, len(row))
		for j, f := range row {
			fields[j] = ast.NewLiteralNode(f, ast.ZeroPosition())
		}
		records[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

// FromAST creates a Document from the output of Parse or Parser.AST.
// All rows become data records; call SetHeaders to promote one.
func FromAST(node ast.SchemaNode) (*Document, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	doc := NewDocument()
	for _, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, recordNode.Len())
		for _, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			value, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected field value to be string, got %T", literalNode.Value())
			}
			fields = append(fields, value)
		}
		doc.AddRecord(fields)
	}

	return doc, nil
}
