package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-rparse/pkg/rparse"
)

const (
	outputTable = "table"
	outputLines = "lines"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var outputFormats = []string{outputTable, outputLines, outputJSON, outputYAML}

func validOutput(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// lookupTransform returns the named row transform. "none" yields nil.
func lookupTransform(name string) (rparse.Transform, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "upper":
		return cases.Upper(language.Und).String, nil
	case "lower":
		return cases.Lower(language.Und).String, nil
	case "title":
		return cases.Title(language.Und).String, nil
	default:
		return nil, fmt.Errorf("%w: unknown transform %q (expected none, upper, lower, title)", errUsage, name)
	}
}

// write renders p in the given format.
func write(w io.Writer, p *rparse.Parser, format string, transform rparse.Transform) error {
	switch format {
	case outputLines:
		lines, err := p.EachLine(transform)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil

	case outputJSON, outputYAML:
		data, err := structured(p)
		if err != nil {
			return err
		}
		if format == outputJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()

	default:
		table, err := p.ReadAll()
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, row := range table {
			cells := make([]string, len(row))
			for i, field := range row {
				cells[i] = cellEscaper.Replace(field)
			}
			if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
				return err
			}
		}
		return tw.Flush()
	}
}

// cellEscaper hides the characters tabwriter treats as cell or line breaks.
var cellEscaper = strings.NewReplacer("\t", `\t`, "\v", `\v`, "\f", `\f`)

// structured returns named records when headers are enabled and the raw table otherwise.
func structured(p *rparse.Parser) (any, error) {
	if p.HasHeaders() {
		return p.WithHeaders()
	}
	return p.ReadAll()
}
