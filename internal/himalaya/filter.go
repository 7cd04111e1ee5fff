package himalaya

import (
	"sort"
	"strings"
)

// FilterSpec describes the expedition filters the dashboard supports. An
// empty slice or empty string means no constraint on that dimension; active
// constraints combine with AND.
type FilterSpec struct {
	Years       []string
	Nations     []string
	LeaderQuery string
}

// FilterExpeditions returns the expeditions matching spec. The filter is
// pure and stable: input row order is preserved, the input table is never
// modified, and applying the same spec twice yields the same rows.
func FilterExpeditions(t Table, spec FilterSpec) Table {
	years := toSet(spec.Years)
	nations := toSet(spec.Nations)
	leader := strings.ToLower(strings.TrimSpace(spec.LeaderQuery))

	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if len(years) > 0 && !years[row["year"]] {
			continue
		}
		if len(nations) > 0 && !nations[row["nation"]] {
			continue
		}
		if leader != "" && !leaderMatches(row["leaders"], leader) {
			continue
		}
		rows = append(rows, row)
	}

	return Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    rows,
	}
}

// leaderMatches reports whether the leaders field contains the lowercased
// query. The sentinel never matches: an unknown leader must not satisfy a
// non-empty search, even one like "na".
func leaderMatches(leaders, lowerQuery string) bool {
	if leaders == Sentinel {
		return false
	}
	return strings.Contains(strings.ToLower(leaders), lowerQuery)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// YearOptions returns the distinct expedition years, newest first, sentinel
// excluded. Used to populate the year filter widget.
func YearOptions(t Table) []string {
	years := distinct(t, "year")
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// NationOptions returns the distinct expedition nations in ascending order,
// sentinel excluded.
func NationOptions(t Table) []string {
	nations := distinct(t, "nation")
	sort.Strings(nations)
	return nations
}

func distinct(t Table, column string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range t.Rows {
		v := row[column]
		if v == Sentinel || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
