package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/config"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] FILE1 FILE2",
	Short: "Re-run the comparison whenever either file changes",
	Long: `Print the differences between two files, then print them again every
time either file is saved. Bursts of file events are coalesced using the
watch.debounce setting. Press Ctrl-C to stop.

Examples:
  textdiff watch old.txt new.txt
  textdiff watch -f stats --words draft.md final.md`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	addDiffFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if args[0] == stdinPath || args[1] == stdinPath {
		return errors.New("watch cannot read from stdin")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(watcher.Config{
		Paths:       args,
		DebounceDur: cfg.Watch.Debounce,
	})
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	return watchLoop(ctx, cmd.OutOrStdout(), cfg, args[0], args[1], onChange)
}

// watchLoop prints a diff now and after every change notification until ctx
// ends. Read and diff errors are reported and do not stop the loop.
func watchLoop(ctx context.Context, out io.Writer, conf config.Config, path1, path2 string, onChange <-chan struct{}) error {
	mode, err := parseMode(conf)
	if err != nil {
		return err
	}

	env, err := newDiffEnv(conf)
	if err != nil {
		return err
	}
	defer env.close()

	run := func() {
		res, err := env.diffFiles(ctx, nil, path1, path2, mode, conf.Diff.Options())
		if err != nil {
			if ctx.Err() == nil {
				log.ErrorErr(log.CatWatcher, "Diff failed", err)
				_, _ = fmt.Fprintf(out, "error: %v\n", err)
			}
			return
		}
		_, _ = fmt.Fprintf(out, "==> %s  %s vs %s\n", time.Now().Format("15:04:05"), path1, path2)
		if err := render(out, res, conf.Output); err != nil {
			log.ErrorErr(log.CatWatcher, "Render failed", err)
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			log.Debug(log.CatWatcher, "Watch stopped")
			return nil
		case _, ok := <-onChange:
			if !ok {
				return nil
			}
			log.Debug(log.CatWatcher, "Inputs changed, re-running diff")
			run()
		}
	}
}
