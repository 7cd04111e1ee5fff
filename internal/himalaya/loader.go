package himalaya

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// loadTable reads and normalizes one backing CSV file. The returned table is
// schema-complete: every canonical column is present in every row and no
// cell is empty. Errors are returned for unreadable or structurally invalid
// sources; the manager converts them into warnings plus an empty table.
func loadTable(path, name string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading %s: %w", name, err)
	}

	reader := csv.NewReader(strings.NewReader(decodeText(b)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	if len(records) == 0 {
		return emptyTable(name), nil
	}

	header := make([]string, 0, len(records[0]))
	for _, col := range records[0] {
		header = append(header, strings.TrimSpace(col))
	}

	// Source columns keep their position; canonical columns the source
	// lacks are appended and synthesized in every row.
	columns := append([]string(nil), header...)
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[col] = true
	}
	var missing []string
	for _, col := range Columns(name) {
		if !seen[col] {
			missing = append(missing, col)
			columns = append(columns, col)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range header {
			var value string
			if i < len(record) {
				value = record[i]
			}
			if strings.TrimSpace(value) == "" {
				value = Sentinel
			}
			row[col] = value
		}
		for _, col := range missing {
			row[col] = Sentinel
		}
		rows = append(rows, row)
	}

	return Table{Name: name, Columns: columns, Rows: rows}, nil
}

// decodeText interprets raw table bytes as UTF-8 when valid, otherwise as
// Latin-1. Latin-1 maps every byte, so the fallback cannot fail.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(decoded)
}
