package textdiff

import "strings"

// DiffLines compares text1 and text2 line by line.
func DiffLines(text1, text2 string, opts Options) []Record {
	return DiffWith(LCS, text1, text2, ModeLine, opts)
}

// DiffWords compares text1 and text2 by whitespace-delimited runs.
// opts.IgnoreWhitespace has no effect in word mode.
func DiffWords(text1, text2 string, opts Options) []Record {
	return DiffWith(LCS, text1, text2, ModeWord, opts)
}

// Diff compares text1 and text2 in the given mode with the LCS aligner.
func Diff(text1, text2 string, mode Mode, opts Options) []Record {
	return DiffWith(LCS, text1, text2, mode, opts)
}

// DiffWith runs the full pipeline using aligner for the alignment step.
// A nil aligner means LCS.
func DiffWith(aligner Aligner, text1, text2 string, mode Mode, opts Options) []Record {
	if aligner == nil {
		aligner = LCS
	}
	if mode == ModeWord {
		opts.IgnoreWhitespace = false
	}

	tokensA := Tokenize(text1, mode, opts)
	tokensB := Tokenize(text2, mode, opts)
	actions := aligner.Align(Keys(tokensA), Keys(tokensB))

	return Classify(actions, tokensA, tokensB, mode)
}

// Side selects one of the two compared documents.
type Side int

const (
	// SideOld is the first document.
	SideOld Side = iota
	// SideNew is the second document.
	SideNew
)

// Reconstruct rebuilds one input document from its records. Line-mode
// content is joined with "\n"; word-mode content is concatenated.
//
// Unchanged records hold the old document's text, so SideNew reproduces
// the second input exactly only when the diff ran with zero Options. Under
// IgnoreCase or IgnoreWhitespace, matched tokens keep the first input's
// spelling.
func Reconstruct(records []Record, side Side, mode Mode) string {
	skip := Added
	if side == SideNew {
		skip = Removed
	}

	sep := ""
	if mode == ModeLine {
		sep = "\n"
	}

	var b strings.Builder
	first := true
	for _, rec := range records {
		if rec.Kind == skip {
			continue
		}
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(rec.Content)
		first = false
	}
	return b.String()
}
