package tokenizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzTokenizer checks that tokens never panic and always cover the input exactly.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []struct {
		input string
		delim string
	}{
		{"", ","},
		{"a", ","},
		{",", ","},
		{"\r\n", ","},
		{`"quoted"`, ","},
		{"a;b,c", ";"},
		{"a::b:c", "::"},
		{" \t x \t", "\t"},
	}
	for _, s := range seeds {
		f.Add(s.input, s.delim)
	}

	f.Fuzz(func(t *testing.T, input, delim string) {
		if delim == "" || strings.ContainsAny(delim, "\r\n\"") || !utf8.ValidString(input+delim) {
			t.Skip()
		}
		tok := NewTokenizerForLine(input, Options{Delimiter: delim})

		var sb strings.Builder
		for {
			token, ok := tok.NextToken()
			if !ok {
				break
			}
			sb.WriteString(token.ValueString())
		}
		if sb.String() != input {
			t.Errorf("tokens reassemble to %q, want %q", sb.String(), input)
		}
	})
}
