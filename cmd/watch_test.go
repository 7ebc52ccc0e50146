package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/config"
)

// syncBuffer guards a bytes.Buffer shared with the watch goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchLoop_RerunsOnChange(t *testing.T) {
	p1, p2 := writeInputs(t, "a", "a")

	conf := config.Defaults()
	conf.Output.Format = config.FormatStats

	ctx, cancel := context.WithCancel(context.Background())
	onChange := make(chan struct{})
	out := &syncBuffer{}

	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, out, conf, p1, p2, onChange)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "+0 -0 (1 records)")
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(p2, []byte("b"), 0o600))
	onChange <- struct{}{}

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "+1 -1 (2 records)")
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, 2, strings.Count(out.String(), "==> "))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestWatchLoop_ReportsErrorsAndContinues(t *testing.T) {
	p1, p2 := writeInputs(t, "a", "a")
	require.NoError(t, os.Remove(p2))

	conf := config.Defaults()
	conf.Output.Format = config.FormatStats

	onChange := make(chan struct{}, 1)
	out := &syncBuffer{}

	done := make(chan error, 1)
	go func() {
		done <- watchLoop(context.Background(), out, conf, p1, p2, onChange)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "error: reading")
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(p2, []byte("a"), 0o600))
	onChange <- struct{}{}
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "+0 -0 (1 records)")
	}, time.Second, 10*time.Millisecond)

	close(onChange)
	select {
	case err := <-done:
		require.NoError(t, err, "a closed notification channel ends the loop")
	case <-time.After(time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestWatch_RejectsStdin(t *testing.T) {
	_, err := execute(t, "", "watch", "-", "b.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "stdin")
}
