package himalaya

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expeditionRow(expid, year, leaders, nation string) Row {
	row := Row{
		"expid":   expid,
		"year":    year,
		"leaders": leaders,
		"nation":  nation,
	}
	for _, col := range Columns(TableExpeditions) {
		if _, ok := row[col]; !ok {
			row[col] = Sentinel
		}
	}
	return row
}

func expeditionTable(rows ...Row) Table {
	return Table{Name: TableExpeditions, Columns: Columns(TableExpeditions), Rows: rows}
}

func TestFilterExpeditions_EmptySpecIsIdentity(t *testing.T) {
	input := expeditionTable(
		expeditionRow("E1", "2005", "John Smith", "USA"),
		expeditionRow("E2", "2005", "Ann Lee", "UK"),
		expeditionRow("E3", "2010", "Sam Smith", "USA"),
	)

	filtered := FilterExpeditions(input, FilterSpec{})
	require.Len(t, filtered.Rows, len(input.Rows))
	for i := range input.Rows {
		assert.Equal(t, input.Rows[i], filtered.Rows[i])
	}
}

func TestFilterExpeditions_Idempotent(t *testing.T) {
	input := expeditionTable(
		expeditionRow("E1", "2005", "John Smith", "USA"),
		expeditionRow("E2", "2005", "Ann Lee", "UK"),
		expeditionRow("E3", "2010", "Sam Smith", "USA"),
	)
	spec := FilterSpec{Years: []string{"2005"}, LeaderQuery: "sm"}

	once := FilterExpeditions(input, spec)
	twice := FilterExpeditions(once, spec)
	assert.Equal(t, once.Rows, twice.Rows)
}

func TestFilterExpeditions_CombinedConstraints(t *testing.T) {
	input := expeditionTable(
		expeditionRow("E1", "2005", "John Smith", "USA"),
		expeditionRow("E2", "2005", "Ann Lee", "UK"),
		expeditionRow("E3", "2010", "Sam Smith", "USA"),
	)

	filtered := FilterExpeditions(input, FilterSpec{
		Years:       []string{"2005"},
		Nations:     nil,
		LeaderQuery: "sm",
	})

	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, "E1", filtered.Rows[0]["expid"])
}

func TestFilterExpeditions_Dimensions(t *testing.T) {
	input := expeditionTable(
		expeditionRow("E1", "2005", "John Smith", "USA"),
		expeditionRow("E2", "2005", "Ann Lee", "UK"),
		expeditionRow("E3", "2010", "Sam Smith", "USA"),
		expeditionRow("E4", "2011", Sentinel, "France"),
	)

	testCases := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{
			name: "YearSetMembership",
			spec: FilterSpec{Years: []string{"2005"}},
			want: []string{"E1", "E2"},
		},
		{
			name: "MultipleYears",
			spec: FilterSpec{Years: []string{"2005", "2010"}},
			want: []string{"E1", "E2", "E3"},
		},
		{
			name: "NationSetMembership",
			spec: FilterSpec{Nations: []string{"UK", "France"}},
			want: []string{"E2", "E4"},
		},
		{
			name: "LeaderCaseInsensitive",
			spec: FilterSpec{LeaderQuery: "SMITH"},
			want: []string{"E1", "E3"},
		},
		{
			name: "SentinelLeaderNeverMatches",
			spec: FilterSpec{LeaderQuery: "na"},
			want: nil,
		},
		{
			name: "NoMatch",
			spec: FilterSpec{Years: []string{"1999"}},
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterExpeditions(input, tc.spec)
			var got []string
			for _, row := range filtered.Rows {
				got = append(got, row["expid"])
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterExpeditions_DoesNotMutateInput(t *testing.T) {
	input := expeditionTable(
		expeditionRow("E1", "2005", "John Smith", "USA"),
		expeditionRow("E2", "2010", "Ann Lee", "UK"),
	)

	FilterExpeditions(input, FilterSpec{Years: []string{"2005"}})

	require.Len(t, input.Rows, 2)
	assert.Equal(t, "E1", input.Rows[0]["expid"])
	assert.Equal(t, "E2", input.Rows[1]["expid"])
}

func TestFilterOptions(t *testing.T) {
	input := expeditionTable(
		expeditionRow("E1", "2005", "John Smith", "USA"),
		expeditionRow("E2", "2010", "Ann Lee", "UK"),
		expeditionRow("E3", "2005", "Sam Smith", Sentinel),
		expeditionRow("E4", Sentinel, "Jean Roux", "France"),
	)

	t.Run("YearsNewestFirstSentinelExcluded", func(t *testing.T) {
		assert.Equal(t, []string{"2010", "2005"}, YearOptions(input))
	})

	t.Run("NationsAscendingSentinelExcluded", func(t *testing.T) {
		assert.Equal(t, []string{"France", "UK", "USA"}, NationOptions(input))
	})
}
