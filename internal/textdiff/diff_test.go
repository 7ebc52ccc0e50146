package textdiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffLines_Scenario(t *testing.T) {
	records := DiffLines("a\nb\nc", "a\nx\nc", Options{})

	require.Equal(t, []Record{
		{Kind: Unchanged, Content: "a", OldLine: 1, NewLine: 1},
		{Kind: Removed, Content: "b", OldLine: 2},
		{Kind: Added, Content: "x", NewLine: 2},
		{Kind: Unchanged, Content: "c", OldLine: 3, NewLine: 3},
	}, records)
	require.Equal(t, Statistics{Additions: 1, Deletions: 1, Total: 4}, ComputeStatistics(records))
}

func TestDiffWords_Scenario(t *testing.T) {
	records := DiffWords("foo bar", "foo baz", Options{})

	require.Equal(t, []Record{
		{Kind: Unchanged, Content: "foo"},
		{Kind: Unchanged, Content: " "},
		{Kind: Removed, Content: "bar"},
		{Kind: Added, Content: "baz"},
	}, records)
}

func TestDiffLines_Empty(t *testing.T) {
	records := DiffLines("", "", Options{})
	require.Empty(t, records)
	require.Equal(t, Statistics{}, ComputeStatistics(records))
}

func TestDiffLines_IgnoreCase(t *testing.T) {
	records := DiffLines("Hello", "hello", Options{IgnoreCase: true})
	require.Equal(t, []Record{{Kind: Unchanged, Content: "Hello", OldLine: 1, NewLine: 1}}, records)

	records = DiffLines("Hello", "hello", Options{})
	require.Equal(t, Statistics{Additions: 1, Deletions: 1, Total: 2}, ComputeStatistics(records))
}

func TestDiffLines_IgnoreWhitespace(t *testing.T) {
	records := DiffLines("  a\nb  ", "a\n\tb", Options{IgnoreWhitespace: true})
	require.Equal(t, []Record{
		{Kind: Unchanged, Content: "  a", OldLine: 1, NewLine: 1},
		{Kind: Unchanged, Content: "b  ", OldLine: 2, NewLine: 2},
	}, records)
}

func TestDiffLines_EmptySide(t *testing.T) {
	records := DiffLines("", "one\ntwo", Options{})
	require.Equal(t, []Record{
		{Kind: Added, Content: "one", NewLine: 1},
		{Kind: Added, Content: "two", NewLine: 2},
	}, records)

	records = DiffLines("one\ntwo", "", Options{})
	require.Equal(t, []Record{
		{Kind: Removed, Content: "one", OldLine: 1},
		{Kind: Removed, Content: "two", OldLine: 2},
	}, records)
}

func TestDiffLines_TrailingNewline(t *testing.T) {
	records := DiffLines("a\n", "a", Options{})
	require.Equal(t, []Record{
		{Kind: Unchanged, Content: "a", OldLine: 1, NewLine: 1},
		{Kind: Removed, Content: "", OldLine: 2},
	}, records)
}

func TestDiffWords_IgnoresWhitespaceOption(t *testing.T) {
	withOpt := DiffWords("a  b", "a b", Options{IgnoreWhitespace: true})
	without := DiffWords("a  b", "a b", Options{})
	require.Equal(t, without, withOpt)
	require.Equal(t, 1, ComputeStatistics(withOpt).Deletions)
}

func TestDiffWords_IgnoreCase(t *testing.T) {
	records := DiffWords("Foo Bar", "foo bar", Options{IgnoreCase: true})
	require.True(t, ComputeStatistics(records).Identical())
	require.Equal(t, "Foo Bar", Reconstruct(records, SideOld, ModeWord))
}

func TestDiff_DispatchesOnMode(t *testing.T) {
	require.Equal(t, DiffLines("a b", "a c", Options{}), Diff("a b", "a c", ModeLine, Options{}))
	require.Equal(t, DiffWords("a b", "a c", Options{}), Diff("a b", "a c", ModeWord, Options{}))
}

func TestDiffWith_NilAlignerUsesLCS(t *testing.T) {
	got := DiffWith(nil, "a\nb\nc", "a\nx\nc", ModeLine, Options{})
	require.Equal(t, DiffLines("a\nb\nc", "a\nx\nc", Options{}), got)
}

func TestDiffWith_Myers(t *testing.T) {
	text1 := "one\ntwo\nthree\nfour"
	text2 := "zero\none\nthree\nfour\nfive"

	records := DiffWith(Myers, text1, text2, ModeLine, Options{})
	require.Equal(t, text1, Reconstruct(records, SideOld, ModeLine))
	require.Equal(t, text2, Reconstruct(records, SideNew, ModeLine))
	require.Equal(t, ComputeStatistics(DiffLines(text1, text2, Options{})), ComputeStatistics(records))
}

func TestReconstruct(t *testing.T) {
	records := DiffLines("a\nb\nc", "a\nx\nc", Options{})
	require.Equal(t, "a\nb\nc", Reconstruct(records, SideOld, ModeLine))
	require.Equal(t, "a\nx\nc", Reconstruct(records, SideNew, ModeLine))

	words := DiffWords("foo bar", "foo baz", Options{})
	require.Equal(t, "foo bar", Reconstruct(words, SideOld, ModeWord))
	require.Equal(t, "foo baz", Reconstruct(words, SideNew, ModeWord))

	require.Equal(t, "", Reconstruct(nil, SideOld, ModeLine))
}

func TestReconstruct_NormalizedKeepsOldSpelling(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		mode    Mode
		oldSide string
		newSide string
	}{
		{
			name:    "ignore case in word mode",
			records: DiffWords("Foo", "foo", Options{IgnoreCase: true}),
			mode:    ModeWord,
			oldSide: "Foo",
			newSide: "Foo",
		},
		{
			name:    "ignore whitespace in line mode",
			records: DiffLines("a", "a ", Options{IgnoreWhitespace: true}),
			mode:    ModeLine,
			oldSide: "a",
			newSide: "a",
		},
		{
			name:    "ignore case with an edit",
			records: DiffLines("Keep\nold", "keep\nnew", Options{IgnoreCase: true}),
			mode:    ModeLine,
			oldSide: "Keep\nold",
			newSide: "Keep\nnew",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.oldSide, Reconstruct(tt.records, SideOld, tt.mode))
			require.Equal(t, tt.newSide, Reconstruct(tt.records, SideNew, tt.mode))
		})
	}
}
