package textdiff

// Classify walks actions against the original tokens and emits one Record
// per action. Line numbers are only attached in line mode.
//
// actions must consume tokensA and tokensB exactly, as any Aligner
// guarantees.
func Classify(actions []Action, tokensA, tokensB []Token, mode Mode) []Record {
	records := make([]Record, 0, len(actions))
	lines := mode == ModeLine

	i, j := 0, 0
	lineA, lineB := 1, 1
	for _, action := range actions {
		var rec Record
		switch action {
		case Match:
			rec = Record{Kind: Unchanged, Content: tokensA[i].Original}
			if lines {
				rec.OldLine, rec.NewLine = lineA, lineB
			}
			i++
			j++
			lineA++
			lineB++
		case Delete:
			rec = Record{Kind: Removed, Content: tokensA[i].Original}
			if lines {
				rec.OldLine = lineA
			}
			i++
			lineA++
		case Insert:
			rec = Record{Kind: Added, Content: tokensB[j].Original}
			if lines {
				rec.NewLine = lineB
			}
			j++
			lineB++
		}
		records = append(records, rec)
	}

	return records
}
