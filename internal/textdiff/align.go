package textdiff

// Action is one step of an alignment between two key sequences.
type Action int

const (
	// Match consumes one key from each side.
	Match Action = iota
	// Insert consumes one key from the second sequence.
	Insert
	// Delete consumes one key from the first sequence.
	Delete
)

func (a Action) String() string {
	switch a {
	case Match:
		return "match"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Aligner turns two key sequences into an action sequence. Match and Delete
// actions together consume exactly len(keysA) keys; Match and Insert consume
// exactly len(keysB).
type Aligner interface {
	Align(keysA, keysB []string) []Action
}

// AlignerFunc adapts a plain function to the Aligner interface.
type AlignerFunc func(keysA, keysB []string) []Action

// Align calls f.
func (f AlignerFunc) Align(keysA, keysB []string) []Action {
	return f(keysA, keysB)
}

// LCS is the default Aligner: a full longest-common-subsequence table with a
// deterministic backtrack.
var LCS Aligner = AlignerFunc(Align)

// LCSCells returns the number of table cells Align allocates for inputs of
// length m and n.
func LCSCells(m, n int) int {
	return (m + 1) * (n + 1)
}

// Align computes the LCS alignment of keysA and keysB in O(m*n) time and
// space.
//
// When backtracking hits equally scored paths it prefers Insert, so for a
// replaced line the Removed record comes before the Added one in forward
// order.
func Align(keysA, keysB []string) []Action {
	m, n := len(keysA), len(keysB)

	dp := make([][]int, m+1)
	cells := make([]int, (m+1)*(n+1))
	for i := range dp {
		dp[i], cells = cells[:n+1], cells[n+1:]
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if keysA[i-1] == keysB[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	// Actions are written back to front.
	actions := make([]Action, m+n-dp[m][n])
	k := len(actions)
	i, j := m, n
	for i > 0 || j > 0 {
		k--
		switch {
		case i > 0 && j > 0 && keysA[i-1] == keysB[j-1]:
			actions[k] = Match
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			actions[k] = Insert
			j--
		default:
			actions[k] = Delete
			i--
		}
	}

	return actions
}
