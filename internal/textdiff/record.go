package textdiff

import "fmt"

// Kind classifies a Record.
type Kind int

const (
	// Unchanged content is present in both documents.
	Unchanged Kind = iota
	// Added content is only present in the second document.
	Added
	// Removed content is only present in the first document.
	Removed
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Unchanged, Added, Removed:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid record kind %d", int(k))
	}
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unchanged":
		*k = Unchanged
	case "added":
		*k = Added
	case "removed":
		*k = Removed
	default:
		return fmt.Errorf("invalid record kind %q", string(text))
	}
	return nil
}

// Record is one classified unit of diff output.
//
// OldLine and NewLine are 1-based and only set in line mode; zero means the
// record has no line on that side.
type Record struct {
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
	OldLine int    `json:"old_line,omitempty"`
	NewLine int    `json:"new_line,omitempty"`
}

// Changed reports whether the record is an addition or a removal.
func (r Record) Changed() bool {
	return r.Kind == Added || r.Kind == Removed
}
