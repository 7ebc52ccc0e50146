package textdiff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Myers is an O(N*D) Aligner backed by diff-match-patch. It produces a
// minimal edit script but does not follow the LCS tie-break rule, so the
// order of adjacent Removed/Added records may differ from Align.
var Myers Aligner = AlignerFunc(alignMyers)

// surrogateMin and surrogateMax bound the UTF-16 surrogate block, which is
// not a valid rune and would not survive a string round trip.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func alignMyers(keysA, keysB []string) []Action {
	runesA, runesB := keysToRunes(keysA, keysB)

	dmp := diffmatchpatch.New()
	// No deadline: a timed-out bisect returns a valid but non-minimal script.
	dmp.DiffTimeout = 0

	diffs := dmp.DiffMainRunes(runesA, runesB, false)

	actions := make([]Action, 0, len(keysA)+len(keysB))
	for _, d := range diffs {
		var action Action
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			action = Match
		case diffmatchpatch.DiffInsert:
			action = Insert
		case diffmatchpatch.DiffDelete:
			action = Delete
		}
		for range utf8.RuneCountInString(d.Text) {
			actions = append(actions, action)
		}
	}

	return actions
}

// keysToRunes assigns every distinct key a rune so the sequences can be
// diffed as rune slices.
func keysToRunes(keysA, keysB []string) ([]rune, []rune) {
	index := make(map[string]rune, len(keysA)+len(keysB))
	next := rune(1)

	encode := func(keys []string) []rune {
		out := make([]rune, len(keys))
		for i, k := range keys {
			r, ok := index[k]
			if !ok {
				if next == surrogateMin {
					next = surrogateMax + 1
				}
				r = next
				index[k] = r
				next++
			}
			out[i] = r
		}
		return out
	}

	return encode(keysA), encode(keysB)
}
