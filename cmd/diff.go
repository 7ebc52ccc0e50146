package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/cachemanager"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/config"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/diffsvc"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/flags"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/presentation"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/textdiff"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/tracing"
)

// stdinPath selects stdin as an input.
const stdinPath = "-"

// diffEnv wires the diff service for one command invocation.
type diffEnv struct {
	svc      *diffsvc.Service
	provider *tracing.Provider
	cache    *cachemanager.InMemoryCacheManager[string, diffsvc.Result]
}

func newDiffEnv(cfg config.Config) (*diffEnv, error) {
	provider, err := tracing.NewProvider(cfg.Tracing.TracingProviderConfig())
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	env := &diffEnv{provider: provider}
	opts := []diffsvc.Option{
		diffsvc.WithFlags(flags.New(cfg.Flags)),
		diffsvc.WithTracer(provider.Tracer()),
	}
	if cfg.Cache.Enabled {
		env.cache = cachemanager.NewInMemoryCacheManager[string, diffsvc.Result](
			"diff-results", cfg.Cache.MaxEntries, cfg.Cache.TTL, cachemanager.DefaultCleanupInterval)
		opts = append(opts, diffsvc.WithCache(env.cache))
	}

	env.svc = diffsvc.New(diffsvc.Config{
		Algorithm: cfg.Diff.Algorithm,
		MaxCells:  cfg.Diff.MaxCells,
		CacheTTL:  cfg.Cache.TTL,
	}, opts...)
	return env, nil
}

func (e *diffEnv) close() {
	if e.cache != nil {
		_ = e.cache.Flush(context.Background())
	}
	if err := e.provider.Shutdown(context.Background()); err != nil {
		log.ErrorErr(log.CatTrace, "Failed to shut down tracing", err)
	}
}

// diffFiles reads both inputs and compares them.
func (e *diffEnv) diffFiles(ctx context.Context, stdin io.Reader, path1, path2 string, mode textdiff.Mode, opts textdiff.Options) (diffsvc.Result, error) {
	if path1 == stdinPath && path2 == stdinPath {
		return diffsvc.Result{}, errors.New("only one input can be read from stdin")
	}

	text1, err := readInput(path1, stdin)
	if err != nil {
		return diffsvc.Result{}, err
	}
	text2, err := readInput(path2, stdin)
	if err != nil {
		return diffsvc.Result{}, err
	}

	log.Debug(log.CatCLI, "Comparing", "left", path1, "right", path2, "left_bytes", len(text1), "right_bytes", len(text2))

	return e.svc.Compute(ctx, diffsvc.Request{
		Text1:   text1,
		Text2:   text2,
		Mode:    mode,
		Options: opts,
	})
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input file
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func parseMode(cfg config.Config) (textdiff.Mode, error) {
	mode, err := textdiff.ParseMode(cfg.Diff.Mode)
	if err != nil {
		return mode, fmt.Errorf("diff.mode: %w", err)
	}
	return mode, nil
}

// render writes res in the configured output format.
func render(w io.Writer, res diffsvc.Result, output config.OutputConfig) error {
	f := presentation.NewFormatter(w)

	switch output.Format {
	case config.FormatSideBySide:
		width := output.Width
		if width == 0 {
			width = config.Defaults().Output.Width
		}
		return f.SideBySide(textdiff.ToSideBySide(res.Records), width, output.LineNumbers)
	case config.FormatJSON:
		return f.JSON(presentation.FromResult(res))
	case config.FormatStats:
		return f.Stats(res.Stats)
	default:
		return f.Unified(res.Records, res.Mode, output.LineNumbers)
	}
}
