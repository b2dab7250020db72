package rparse

import "fmt"

// BindHeaders treats the first row of table as column names and returns one
// NamedRecord per remaining row, in order.
//
// A data row shorter than the header row fails the whole call with a
// *RowWidthError. Fields beyond the header width are ignored. When two
// headers share a name, the later column wins. An empty table yields no
// records.
//
// Example:
//
//	records, err := rparse.BindHeaders(rparse.Table{{"id", "name"}, {"1", "Alice"}})
//	// records[0] == rparse.NamedRecord{"id": "1", "name": "Alice"}
func BindHeaders(table Table) ([]NamedRecord, error) {
	return bindHeaders(table, nil, nil)
}

// bindHeaders binds headers; lines optionally carries the physical line of
// each row for error and warning positions.
func bindHeaders(table Table, lines []int, warn WarningHandler) ([]NamedRecord, error) {
	if len(table) == 0 {
		return []NamedRecord{}, nil
	}

	headers := table[0]
	records := make([]NamedRecord, 0, len(table)-1)

	for i, row := range table[1:] {
		line := 0
		if i+1 < len(lines) {
			line = lines[i+1]
		}

		if len(row) < len(headers) {
			return nil, &RowWidthError{Row: i + 1, Line: line, Got: len(row), Want: len(headers)}
		}
		if len(row) > len(headers) && warn != nil {
			warn(line, fmt.Sprintf("data row %d has %d fields, ignoring %d beyond the %d headers",
				i+1, len(row), len(row)-len(headers), len(headers)))
		}

		record := make(NamedRecord, len(headers))
		for j, name := range headers {
			record[name] = row[j]
		}
		records = append(records, record)
	}

	return records, nil
}
