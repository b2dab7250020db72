package rparse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shapestone/shape-rparse/pkg/rparse"
)

func TestBindHeaders(t *testing.T) {
	tests := []struct {
		name  string
		table rparse.Table
		want  []rparse.NamedRecord
	}{
		{
			name:  "id and name",
			table: rparse.Table{{"id", "name"}, {"1", "Alice"}},
			want:  []rparse.NamedRecord{{"id": "1", "name": "Alice"}},
		},
		{
			name:  "order follows rows",
			table: rparse.Table{{"k"}, {"3"}, {"1"}, {"2"}},
			want:  []rparse.NamedRecord{{"k": "3"}, {"k": "1"}, {"k": "2"}},
		},
		{
			name:  "header only",
			table: rparse.Table{{"id", "name"}},
			want:  []rparse.NamedRecord{},
		},
		{
			name:  "empty table",
			table: rparse.Table{},
			want:  []rparse.NamedRecord{},
		},
		{
			name:  "duplicate header keeps later column",
			table: rparse.Table{{"x", "y", "x"}, {"1", "2", "3"}},
			want:  []rparse.NamedRecord{{"x": "3", "y": "2"}},
		},
		{
			name:  "extra fields ignored",
			table: rparse.Table{{"a"}, {"1", "2"}},
			want:  []rparse.NamedRecord{{"a": "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rparse.BindHeaders(tt.table)
			if err != nil {
				t.Fatalf("BindHeaders() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BindHeaders() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBindHeaders_ShortRow(t *testing.T) {
	table := rparse.Table{{"id", "name", "age"}, {"1", "Alice"}}
	got, err := rparse.BindHeaders(table)
	if got != nil {
		t.Errorf("expected nil records, got %v", got)
	}

	var widthErr *rparse.RowWidthError
	if !errors.As(err, &widthErr) {
		t.Fatalf("expected *RowWidthError, got %T: %v", err, err)
	}
	if widthErr.Row != 1 || widthErr.Line != 0 || widthErr.Got != 2 || widthErr.Want != 3 {
		t.Errorf("RowWidthError = %+v", *widthErr)
	}
}
