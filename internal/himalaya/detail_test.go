package himalaya

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailFixtureTables(t *testing.T) Tables {
	t.Helper()
	manager := NewManager(Config{DataPath: filepath.Join("testdata", "full")}, testLogger())
	tables := manager.Tables()
	require.Empty(t, manager.Warnings())
	return tables
}

func TestDetail_KeyNormalization(t *testing.T) {
	// The expedition is stored as "EVER05101"; its members carry the key as
	// "ever05101", "EVER05101", and "  EVER05101  ". All must join.
	tables := detailFixtureTables(t)

	testCases := []struct {
		name string
		key  string
	}{
		{name: "UpperCase", key: "EVER05101"},
		{name: "LowerCase", key: "ever05101"},
		{name: "SurroundingWhitespace", key: "  ever05101 "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bundle := Detail(tc.key, tables)

			require.True(t, bundle.Found)
			assert.Equal(t, "EVER05101", bundle.Expedition["expid"])
			assert.Len(t, bundle.Members, 3)
			assert.Len(t, bundle.References, 2)
		})
	}
}

func TestDetail_WhitespaceStoredKey(t *testing.T) {
	// The expedition key itself is stored with stray whitespace.
	tables := detailFixtureTables(t)

	bundle := Detail("EVER05102", tables)
	require.True(t, bundle.Found)
	require.Len(t, bundle.Members, 1)
	assert.Equal(t, "Ann", bundle.Members[0]["fname"])
}

func TestDetail_PeakJoinCaseFolded(t *testing.T) {
	// exped stores peakid "EVER", peaks stores "ever".
	tables := detailFixtureTables(t)

	bundle := Detail("EVER05101", tables)
	require.True(t, bundle.Found)
	require.True(t, bundle.PeakFound)
	assert.Equal(t, "Everest", bundle.Peak["pkname"])
	assert.Equal(t, "8850", bundle.Peak["heightm"])
}

func TestDetail_MemberOrderPreserved(t *testing.T) {
	tables := detailFixtureTables(t)

	bundle := Detail("EVER05101", tables)
	require.Len(t, bundle.Members, 3)
	assert.Equal(t, "1", bundle.Members[0]["membid"])
	assert.Equal(t, "2", bundle.Members[1]["membid"])
	assert.Equal(t, "3", bundle.Members[2]["membid"])
}

func TestDetail_UnknownKeyIsNotFoundBundle(t *testing.T) {
	tables := detailFixtureTables(t)

	bundle := Detail("NOPE99999", tables)
	assert.False(t, bundle.Found)
	assert.Nil(t, bundle.Expedition)
	assert.Empty(t, bundle.Members)
	assert.False(t, bundle.PeakFound)
	assert.Empty(t, bundle.References)
}

func TestDetail_EmptyKey(t *testing.T) {
	tables := detailFixtureTables(t)

	bundle := Detail("   ", tables)
	assert.False(t, bundle.Found)
	assert.Empty(t, bundle.Members)
}

func TestDetail_MissingPeakDegrades(t *testing.T) {
	// LHOT06302 targets peak "LHOT", which the peaks table does not have.
	tables := detailFixtureTables(t)

	bundle := Detail("LHOT06302", tables)
	require.True(t, bundle.Found)
	assert.False(t, bundle.PeakFound)
	assert.Nil(t, bundle.Peak)
}

func TestDetail_SentinelPeakKeySkipsJoin(t *testing.T) {
	expeditions := expeditionTable(expeditionRow("E1", "2005", "John Smith", "USA"))
	peaks := Table{Name: TablePeaks, Columns: Columns(TablePeaks), Rows: []Row{
		{"peakid": Sentinel, "pkname": "Bogus", "pkname2": Sentinel, "location": Sentinel, "heightm": Sentinel},
	}}
	tables := Tables{
		Expeditions: expeditions,
		Members:     emptyTable(TableMembers),
		Peaks:       peaks,
		References:  emptyTable(TableReferences),
	}

	// E1's peakid is the sentinel; it must not join against a sentinel
	// peak row.
	bundle := Detail("E1", tables)
	require.True(t, bundle.Found)
	assert.False(t, bundle.PeakFound)
}

func TestDetail_EmptyTablesNeverFail(t *testing.T) {
	tables := Tables{
		Expeditions: emptyTable(TableExpeditions),
		Members:     emptyTable(TableMembers),
		Peaks:       emptyTable(TablePeaks),
		References:  emptyTable(TableReferences),
	}

	bundle := Detail("EVER05101", tables)
	assert.False(t, bundle.Found)
	assert.Empty(t, bundle.Members)
	assert.Empty(t, bundle.References)
}
