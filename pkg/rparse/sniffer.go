package rparse

import (
	"strings"
	"unicode"

	"github.com/shapestone/shape-rparse/internal/parser"
)

// candidateDelimiters are tried by Sniffer, in tie-break order.
var candidateDelimiters = []string{",", "\t", ";", "|"}

// Sniffer guesses the delimiter and header presence from a sample.
// For best results, provide at least 2-3 lines of data.
type Sniffer struct {
	lines []parser.Line
}

// NewSniffer creates a Sniffer for sample.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{lines: parser.SplitLines(sample)}
}

// DetectDelimiter returns the candidate whose per-line count is highest,
// rewarding candidates that appear the same number of times on every line.
// Returns "," when no candidate appears.
func (s *Sniffer) DetectDelimiter() string {
	best := ","
	bestScore := 0

	for _, delim := range candidateDelimiters {
		score := s.score(delim)
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}
	return best
}

// score rates delim by its count on the first line, times ten when every line agrees.
func (s *Sniffer) score(delim string) int {
	if len(s.lines) == 0 {
		return 0
	}
	first := strings.Count(s.lines[0].Content(), delim)
	if first == 0 {
		return 0
	}
	for _, l := range s.lines[1:] {
		if strings.Count(l.Content(), delim) != first {
			return first
		}
	}
	return first * 10
}

// HasHeader reports whether the first line looks like column names: it has
// no numeric fields while the second line has at least one.
func (s *Sniffer) HasHeader() bool {
	if len(s.lines) < 2 {
		return false
	}

	opts := parser.Options{Delimiter: s.DetectDelimiter()}
	first, err := parser.ExtractFields(s.lines[0], opts)
	if err != nil {
		return false
	}
	second, err := parser.ExtractFields(s.lines[1], opts)
	if err != nil {
		return false
	}

	for _, f := range first {
		if isNumeric(f) {
			return false
		}
	}
	for _, f := range second {
		if isNumeric(f) {
			return true
		}
	}
	return false
}

// isNumeric checks if a string represents a decimal number.
func isNumeric(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "-")
	if s == "" {
		return false
	}

	hasDot := false
	for _, ch := range s {
		if ch == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			return false
		}
	}
	return s != "."
}
