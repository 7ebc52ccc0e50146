package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/config"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/diffsvc"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/textdiff"
)

func TestRender_Formats(t *testing.T) {
	records := textdiff.DiffLines("a\nb", "a\nc", textdiff.Options{})
	res := diffsvc.Result{
		ID:        "id-1",
		Mode:      textdiff.ModeLine,
		Records:   records,
		Stats:     textdiff.ComputeStatistics(records),
		Algorithm: diffsvc.AlgorithmLCS,
	}

	tests := []struct {
		name   string
		output config.OutputConfig
		check  func(t *testing.T, out string)
	}{
		{
			name:   "empty format is unified",
			output: config.OutputConfig{},
			check: func(t *testing.T, out string) {
				require.Equal(t, " a\n-b\n+c\n", out)
			},
		},
		{
			name:   "side-by-side falls back to the default width",
			output: config.OutputConfig{Format: config.FormatSideBySide},
			check: func(t *testing.T, out string) {
				lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
				require.Len(t, lines, 3)
				require.Len(t, lines[0], 58+3+1, "left column is (120-3)/2 cells wide")
			},
		},
		{
			name:   "json",
			output: config.OutputConfig{Format: config.FormatJSON},
			check: func(t *testing.T, out string) {
				require.Contains(t, out, `"id": "id-1"`)
				require.Contains(t, out, `"kind": "removed"`)
			},
		},
		{
			name:   "stats",
			output: config.OutputConfig{Format: config.FormatStats},
			check: func(t *testing.T, out string) {
				require.Equal(t, "+1 -1 (3 records)\n", out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render(&buf, res, tt.output))
			tt.check(t, buf.String())
		})
	}
}

func TestReadInput(t *testing.T) {
	got, err := readInput("-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	require.Equal(t, "from stdin", got)

	p1, _ := writeInputs(t, "from file", "")
	got, err = readInput(p1, nil)
	require.NoError(t, err)
	require.Equal(t, "from file", got)
}
