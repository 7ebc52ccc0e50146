package textdiff

// Statistics summarizes a record list. There is no "modified" count; a
// changed line is always a Removed/Added pair.
type Statistics struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Total     int `json:"total"`
}

// Identical reports whether the records contain no changes.
func (s Statistics) Identical() bool {
	return s.Additions == 0 && s.Deletions == 0
}

// ComputeStatistics counts records by kind.
func ComputeStatistics(records []Record) Statistics {
	stats := Statistics{Total: len(records)}
	for _, rec := range records {
		switch rec.Kind {
		case Added:
			stats.Additions++
		case Removed:
			stats.Deletions++
		}
	}
	return stats
}
