package himalaya

// Row is a single record keyed by column name. All values are text; numeric
// and date interpretation is left to consumers.
type Row map[string]string

// Table is an immutable, schema-complete set of rows. Filtered and joined
// views are fresh Table values that share Row maps read-only; nothing writes
// to a Row after loading.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// emptyTable returns a zero-row table that still carries the full canonical
// column set, so callers never need to existence-check columns.
func emptyTable(name string) Table {
	return Table{Name: name, Columns: Columns(name)}
}
