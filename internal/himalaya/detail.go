package himalaya

import "strings"

// Tables bundles the four loaded tables for the relational lookup.
type Tables struct {
	Expeditions Table
	Members     Table
	Peaks       Table
	References  Table
}

// DetailBundle is the resolved view of one expedition for presentation:
// the expedition's own row, its members, its target peak, and its
// bibliographic references. Absence at any join step is an explicit marker
// (Found/PeakFound false, empty slices), never an error.
type DetailBundle struct {
	Key        string
	Found      bool
	Expedition Row
	Members    []Row
	PeakFound  bool
	Peak       Row
	References []Row
}

// normalizeKey prepares a join key for comparison. Source data stores keys
// with inconsistent casing and stray whitespace; both sides of every join go
// through this.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Detail resolves the expedition identified by key against the loaded
// tables. An unknown key yields Found=false with empty sub-collections; a
// missing peak yields PeakFound=false. The lookup never fails.
func Detail(key string, tables Tables) DetailBundle {
	want := normalizeKey(key)
	bundle := DetailBundle{Key: want}
	if want == "" {
		return bundle
	}

	for _, row := range tables.Expeditions.Rows {
		if normalizeKey(row["expid"]) == want {
			bundle.Found = true
			bundle.Expedition = row
			break
		}
	}
	if !bundle.Found {
		return bundle
	}

	for _, row := range tables.Members.Rows {
		if normalizeKey(row["expid"]) == want {
			bundle.Members = append(bundle.Members, row)
		}
	}

	peakKey := normalizeKey(bundle.Expedition["peakid"])
	if peakKey != "" && peakKey != normalizeKey(Sentinel) {
		for _, row := range tables.Peaks.Rows {
			if normalizeKey(row["peakid"]) == peakKey {
				bundle.PeakFound = true
				bundle.Peak = row
				break
			}
		}
	}

	for _, row := range tables.References.Rows {
		if normalizeKey(row["expid"]) == want {
			bundle.References = append(bundle.References, row)
		}
	}

	return bundle
}
