package himalaya

// Table identifiers. Each resolves to <name>.csv under the configured data
// path.
const (
	TableExpeditions = "exped"
	TableMembers     = "members"
	TablePeaks       = "peaks"
	TableReferences  = "refer"
)

// Sentinel stands in for any missing column or empty cell. After loading,
// every row carries every canonical column and no cell is empty.
const Sentinel = "N/A"

// canonicalColumns is the authoritative column list per table. Source files
// may carry extra columns; the canonical set is a guaranteed floor, not a
// cap.
var canonicalColumns = map[string][]string{
	TableExpeditions: {"expid", "peakid", "year", "host", "leaders", "nation", "sponsor", "highpoint", "hdeaths"},
	TableMembers:     {"expid", "membid", "fname", "lname", "citizenship", "sex", "age", "status", "death", "deathtype"},
	TablePeaks:       {"peakid", "pkname", "pkname2", "location", "heightm"},
	TableReferences:  {"expid", "refid", "ryear", "rauthor", "rtitle", "rpublisher", "rpubdate"},
}

// TableNames returns the four table identifiers in load order.
func TableNames() []string {
	return []string{TableExpeditions, TableMembers, TablePeaks, TableReferences}
}

// Columns returns the ordered canonical column list for a table, or an empty
// slice for an unknown table name. The returned slice is a copy.
func Columns(name string) []string {
	cols := canonicalColumns[name]
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}
