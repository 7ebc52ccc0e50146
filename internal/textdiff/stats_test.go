package textdiff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeStatistics(t *testing.T) {
	records := []Record{
		{Kind: Unchanged, Content: "a"},
		{Kind: Removed, Content: "b"},
		{Kind: Added, Content: "x"},
		{Kind: Added, Content: "y"},
		{Kind: Unchanged, Content: "c"},
	}

	stats := ComputeStatistics(records)
	require.Equal(t, Statistics{Additions: 2, Deletions: 1, Total: 5}, stats)
	require.False(t, stats.Identical())
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(nil)
	require.Equal(t, Statistics{}, stats)
	require.True(t, stats.Identical())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "unchanged", Unchanged.String())
	require.Equal(t, "added", Added.String())
	require.Equal(t, "removed", Removed.String())
	require.Equal(t, "unknown", Kind(7).String())
}

func TestRecord_JSON(t *testing.T) {
	data, err := json.Marshal([]Record{
		{Kind: Removed, Content: "b", OldLine: 2},
		{Kind: Added, Content: "baz"},
	})
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"kind":"removed","content":"b","old_line":2},
		{"kind":"added","content":"baz"}
	]`, string(data))

	var decoded []Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, Removed, decoded[0].Kind)
	require.Equal(t, Added, decoded[1].Kind)
}

func TestKind_UnmarshalTextRejectsUnknown(t *testing.T) {
	var k Kind
	err := k.UnmarshalText([]byte("modified"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid record kind")

	_, err = Kind(5).MarshalText()
	require.Error(t, err)
}

func TestRecord_Changed(t *testing.T) {
	require.False(t, Record{Kind: Unchanged}.Changed())
	require.True(t, Record{Kind: Added}.Changed())
	require.True(t, Record{Kind: Removed}.Changed())
}
