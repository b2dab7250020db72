package rparse_test

import (
	"testing"

	"github.com/shapestone/shape-rparse/pkg/rparse"
)

func TestSniffer_DetectDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   string
	}{
		{"comma", "a,b,c\n1,2,3", ","},
		{"tab", "a\tb\tc\n1\t2\t3", "\t"},
		{"semicolon with decimal commas", "a;b\n1,5;2,5", ";"},
		{"pipe", "a|b\r\n1|2", "|"},
		{"empty sample", "", ","},
		{"no candidate", "abc\ndef", ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rparse.NewSniffer(tt.sample).DetectDelimiter(); got != tt.want {
				t.Errorf("DetectDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSniffer_HasHeader(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   bool
	}{
		{"names then numbers", "id,price\n1,9.99", true},
		{"numbers on first row", "1,2\n3,4", false},
		{"text only", "a,b\nc,d", false},
		{"single line", "id,name", false},
		{"quote inside second line", "id,name\n\"1\"x,2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rparse.NewSniffer(tt.sample).HasHeader(); got != tt.want {
				t.Errorf("HasHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}
