// Package presentation renders diff results as plain text or JSON.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/textdiff"
)

// Markers for side-by-side rows.
const (
	markerSame    = " | "
	markerRemoved = " < "
	markerAdded   = " > "
)

// lineNumberWidth is the width of a line-number gutter, excluding the
// trailing space.
const lineNumberWidth = 4

// MinSideBySideWidth is the narrowest total width SideBySide accepts.
const MinSideBySideWidth = 20

// visible replaces characters that would break a one-line cell.
var visible = strings.NewReplacer("\t", "    ", "\r", `\r`, "\n", `\n`)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// Unified writes records as prefixed lines: " " unchanged, "-" removed and
// "+" added. Word-mode records are written inline, with removals as
// [-text-] and additions as {+text+}.
func (f *Formatter) Unified(records []textdiff.Record, mode textdiff.Mode, showLineNumbers bool) error {
	if mode == textdiff.ModeWord {
		return f.inline(records)
	}

	var b strings.Builder
	for _, rec := range records {
		if showLineNumbers {
			b.WriteString(gutter(rec.OldLine))
			b.WriteString(gutter(rec.NewLine))
		}
		b.WriteString(prefix(rec.Kind))
		b.WriteString(rec.Content)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(f.writer, b.String())
	return err
}

func (f *Formatter) inline(records []textdiff.Record) error {
	var b strings.Builder
	for _, rec := range records {
		switch rec.Kind {
		case textdiff.Removed:
			b.WriteString("[-")
			b.WriteString(rec.Content)
			b.WriteString("-]")
		case textdiff.Added:
			b.WriteString("{+")
			b.WriteString(rec.Content)
			b.WriteString("+}")
		default:
			b.WriteString(rec.Content)
		}
	}

	out := b.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	_, err := io.WriteString(f.writer, out)
	return err
}

// SideBySide writes the two columns next to each other within width display
// cells. Content wider than its column is truncated with "...".
func (f *Formatter) SideBySide(sbs textdiff.SideBySide, width int, showLineNumbers bool) error {
	if width < MinSideBySideWidth {
		return fmt.Errorf("side-by-side width must be at least %d, got %d", MinSideBySideWidth, width)
	}
	if len(sbs.Left) != len(sbs.Right) {
		return fmt.Errorf("side-by-side columns differ in length: %d and %d", len(sbs.Left), len(sbs.Right))
	}

	colWidth := (width - len(markerSame)) / 2

	var b strings.Builder
	for i := range sbs.Left {
		left, right := sbs.Left[i], sbs.Right[i]

		marker := markerSame
		switch {
		case left.Kind == textdiff.Removed:
			marker = markerRemoved
		case right.Kind == textdiff.Added:
			marker = markerAdded
		}

		row := cell(left, left.OldLine, colWidth, showLineNumbers) +
			marker +
			cell(right, right.NewLine, colWidth, showLineNumbers)
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(f.writer, b.String())
	return err
}

// Stats writes a one-line summary such as "+2 -1 (7 records)".
func (f *Formatter) Stats(stats textdiff.Statistics) error {
	_, err := fmt.Fprintf(f.writer, "+%d -%d (%d records)\n", stats.Additions, stats.Deletions, stats.Total)
	return err
}

// JSON writes v as indented JSON.
func (f *Formatter) JSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func prefix(kind textdiff.Kind) string {
	switch kind {
	case textdiff.Added:
		return "+"
	case textdiff.Removed:
		return "-"
	default:
		return " "
	}
}

// gutter renders a right-aligned line number, blank for zero.
func gutter(line int) string {
	if line == 0 {
		return strings.Repeat(" ", lineNumberWidth+1)
	}
	return fmt.Sprintf("%*s ", lineNumberWidth, strconv.Itoa(line))
}

// cell renders one column entry padded to exactly width display cells.
func cell(rec textdiff.Record, line, width int, showLineNumbers bool) string {
	var g string
	if showLineNumbers {
		g = gutter(line)
	}

	avail := width - len(g)
	if avail < 1 {
		return runewidth.Truncate(g, width, "")
	}

	content := runewidth.Truncate(visible.Replace(rec.Content), avail, "...")
	return g + runewidth.FillRight(content, avail)
}
