package parser

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

var fuzzSeeds = []string{
	"",
	"a",
	"a,b,c",
	"\"quoted\"",
	"\"ab\"cd",
	"ab\"cd",
	"He said \"hi\" there",
	"\"ab\"\"",
	"a\r\nb\r\n",
	" , ,",
	"\n\n\n",
}

// FuzzParser checks that parsing never panics, never fails on valid text,
// and never yields a field holding a delimiter or terminator.
// Run with: go test -fuzz=FuzzParser -fuzztime=30s ./internal/parser
func FuzzParser(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip()
		}
		rows, err := NewParser(input).Rows()
		if err != nil {
			t.Fatalf("Rows(%q) error = %v", input, err)
		}
		for _, row := range rows {
			for _, field := range row {
				if strings.ContainsAny(field, ",\r\n") {
					t.Errorf("field %q contains a delimiter or terminator", field)
				}
			}
		}
	})
}

// FuzzSingleField checks that text without a delimiter or terminator is
// always exactly one row holding one cleaned field.
func FuzzSingleField(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if input == "" || !utf8.ValidString(input) || strings.ContainsAny(input, ",\r\n") {
			t.Skip()
		}
		rows, err := NewParser(input).Rows()
		if err != nil {
			t.Fatalf("Rows(%q) error = %v", input, err)
		}
		want := [][]string{{CleanField(input)}}
		if !reflect.DeepEqual(rows, want) {
			t.Errorf("Rows(%q) = %q, want %q", input, rows, want)
		}
	})
}

// FuzzRoundTrip checks that joining a row's fields and parsing the result
// again yields the same fields. Rows holding a quote are outside the
// round-trip guarantee and are skipped.
func FuzzRoundTrip(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip()
		}
		rows, err := NewParser(input).Rows()
		if err != nil {
			t.Fatalf("Rows(%q) error = %v", input, err)
		}
		for _, row := range rows {
			joined := strings.Join(row, ",")
			if joined == "" || strings.Contains(joined, `"`) {
				continue
			}
			again, err := NewParser(joined).Rows()
			if err != nil {
				t.Fatalf("Rows(%q) error = %v", joined, err)
			}
			if len(again) != 1 || !reflect.DeepEqual(again[0], row) {
				t.Errorf("re-parse of %q = %q, want [%q]", joined, again, row)
			}
		}
	})
}
