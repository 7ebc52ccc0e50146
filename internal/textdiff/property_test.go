package textdiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

// A small alphabet keeps generated documents overlapping often enough to
// exercise matches, ties and case folding.
func textGen() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.RuneFrom([]rune("abAB \t\n")), 0, 40, -1)
}

func optionsGen() *rapid.Generator[Options] {
	return rapid.Custom(func(t *rapid.T) Options {
		return Options{
			IgnoreCase:       rapid.Bool().Draw(t, "ignoreCase"),
			IgnoreWhitespace: rapid.Bool().Draw(t, "ignoreWhitespace"),
		}
	})
}

func modeGen() *rapid.Generator[Mode] {
	return rapid.SampledFrom([]Mode{ModeLine, ModeWord})
}

// requireNewSide checks the new side of records against text2. Unchanged
// records carry the old document's spelling, so under normalization only
// the keys are compared.
func requireNewSide(t require.TestingT, records []Record, text2 string, mode Mode, opts Options) {
	rebuilt := Reconstruct(records, SideNew, mode)
	if opts == (Options{}) {
		require.Equal(t, text2, rebuilt, "new side must rebuild text2")
		return
	}
	require.Equal(t, Keys(Tokenize(text2, mode, opts)), Keys(Tokenize(rebuilt, mode, opts)),
		"new side must match text2 under normalization")
}

func TestProperty_ReconstructionExact(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text1 := textGen().Draw(rt, "text1")
		text2 := textGen().Draw(rt, "text2")
		mode := modeGen().Draw(rt, "mode")

		records := Diff(text1, text2, mode, Options{})

		require.Equal(rt, text1, Reconstruct(records, SideOld, mode))
		require.Equal(rt, text2, Reconstruct(records, SideNew, mode))
	})
}

func TestProperty_Reconstruction(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text1 := textGen().Draw(rt, "text1")
		text2 := textGen().Draw(rt, "text2")
		mode := modeGen().Draw(rt, "mode")
		opts := optionsGen().Draw(rt, "opts")

		records := Diff(text1, text2, mode, opts)

		require.Equal(rt, text1, Reconstruct(records, SideOld, mode), "old side must rebuild text1")
		requireNewSide(rt, records, text2, mode, opts)
	})
}

func TestProperty_ReconstructionWithMyers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text1 := textGen().Draw(rt, "text1")
		text2 := textGen().Draw(rt, "text2")
		mode := modeGen().Draw(rt, "mode")
		opts := optionsGen().Draw(rt, "opts")

		records := DiffWith(Myers, text1, text2, mode, opts)

		require.Equal(rt, text1, Reconstruct(records, SideOld, mode))
		requireNewSide(rt, records, text2, mode, opts)
	})
}

func TestProperty_Idempotence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := textGen().Draw(rt, "text")

		records := DiffLines(text, text, Options{})
		for i, rec := range records {
			require.Equal(rt, Unchanged, rec.Kind, "record %d", i)
		}

		stats := ComputeStatistics(records)
		require.Zero(rt, stats.Additions)
		require.Zero(rt, stats.Deletions)
	})
}

func TestProperty_SwapDuality(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := textGen().Draw(rt, "a")
		b := textGen().Draw(rt, "b")
		opts := optionsGen().Draw(rt, "opts")

		forward := ComputeStatistics(DiffLines(a, b, opts))
		backward := ComputeStatistics(DiffLines(b, a, opts))

		require.Equal(rt, forward.Additions, backward.Deletions)
		require.Equal(rt, forward.Deletions, backward.Additions)
	})
}

func TestProperty_LineNumbersAreSequential(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text1 := textGen().Draw(rt, "text1")
		text2 := textGen().Draw(rt, "text2")

		oldLine, newLine := 0, 0
		for _, rec := range DiffLines(text1, text2, Options{}) {
			switch rec.Kind {
			case Unchanged:
				oldLine++
				newLine++
				require.Equal(rt, oldLine, rec.OldLine)
				require.Equal(rt, newLine, rec.NewLine)
			case Removed:
				oldLine++
				require.Equal(rt, oldLine, rec.OldLine)
				require.Zero(rt, rec.NewLine)
			case Added:
				newLine++
				require.Equal(rt, newLine, rec.NewLine)
				require.Zero(rt, rec.OldLine)
			}
		}
	})
}

func TestProperty_WordModeHasNoLineNumbers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text1 := textGen().Draw(rt, "text1")
		text2 := textGen().Draw(rt, "text2")

		for _, rec := range DiffWords(text1, text2, Options{}) {
			require.Zero(rt, rec.OldLine)
			require.Zero(rt, rec.NewLine)
		}
	})
}

func TestProperty_SideBySideAligned(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text1 := textGen().Draw(rt, "text1")
		text2 := textGen().Draw(rt, "text2")
		mode := modeGen().Draw(rt, "mode")

		records := Diff(text1, text2, mode, Options{})
		sbs := ToSideBySide(records)

		require.Len(rt, sbs.Left, len(records))
		require.Len(rt, sbs.Right, len(records))
		for i, rec := range records {
			switch rec.Kind {
			case Removed:
				require.Equal(rt, rec, sbs.Left[i])
				require.Equal(rt, "", sbs.Right[i].Content)
			case Added:
				require.Equal(rt, "", sbs.Left[i].Content)
				require.Equal(rt, rec, sbs.Right[i])
			default:
				require.Equal(rt, rec, sbs.Left[i])
				require.Equal(rt, rec, sbs.Right[i])
			}
		}
	})
}

func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text1 := textGen().Draw(rt, "text1")
		text2 := textGen().Draw(rt, "text2")
		mode := modeGen().Draw(rt, "mode")
		opts := optionsGen().Draw(rt, "opts")

		require.Equal(rt, Diff(text1, text2, mode, opts), Diff(text1, text2, mode, opts))
	})
}

func TestProperty_CaseInsensitiveMatchesLowered(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := textGen().Draw(rt, "text")

		records := DiffLines(text, strings.ToUpper(text), Options{IgnoreCase: true})
		require.True(rt, ComputeStatistics(records).Identical())
	})
}
