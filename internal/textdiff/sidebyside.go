package textdiff

// SideBySide holds two row-aligned columns. Left[i] and Right[i] always
// describe the same display row.
type SideBySide struct {
	Left  []Record `json:"left"`
	Right []Record `json:"right"`
}

// placeholder fills the opposite column of an added or removed row.
var placeholder = Record{Kind: Unchanged}

// ToSideBySide reshapes records into two columns of len(records) rows each.
// Removed records go left, Added records go right, and Unchanged records
// appear in both. The empty side of a changed row is an Unchanged record
// with no content and no line numbers.
func ToSideBySide(records []Record) SideBySide {
	sbs := SideBySide{
		Left:  make([]Record, len(records)),
		Right: make([]Record, len(records)),
	}
	for i, rec := range records {
		switch rec.Kind {
		case Removed:
			sbs.Left[i], sbs.Right[i] = rec, placeholder
		case Added:
			sbs.Left[i], sbs.Right[i] = placeholder, rec
		default:
			sbs.Left[i], sbs.Right[i] = rec, rec
		}
	}
	return sbs
}
