// Package textdiff computes line- and word-level differences between two
// text documents.
//
// The pipeline is a pure function of its inputs:
//
//	Tokenize (x2) -> Align -> Classify -> { ComputeStatistics, ToSideBySide }
//
// Tokenize splits text into comparison units and derives a normalized key
// per unit. Align runs a longest-common-subsequence table over the keys and
// backtracks into Match/Insert/Delete actions. Classify walks the actions
// against the original tokens to emit Records carrying the original text and,
// in line mode, 1-based line numbers for each side.
//
// Nothing in this package keeps state between calls. Every function is safe
// for concurrent use and total over its inputs.
//
// Usage:
//
//	records := textdiff.DiffLines("a\nb\nc", "a\nx\nc", textdiff.Options{})
//	stats := textdiff.ComputeStatistics(records)
//	cols := textdiff.ToSideBySide(records)
package textdiff
