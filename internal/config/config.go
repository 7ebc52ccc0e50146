// Package config provides configuration types and defaults for textdiff.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/paths"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/textdiff"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/tracing"
)

// Config holds all configuration options for textdiff.
type Config struct {
	Diff    DiffConfig      `mapstructure:"diff" yaml:"diff"`
	Cache   CacheConfig     `mapstructure:"cache" yaml:"cache"`
	Watch   WatchConfig     `mapstructure:"watch" yaml:"watch"`
	Output  OutputConfig    `mapstructure:"output" yaml:"output"`
	Tracing TracingConfig   `mapstructure:"tracing" yaml:"tracing"`
	Flags   map[string]bool `mapstructure:"flags" yaml:"flags,omitempty"`
}

// DiffConfig holds the comparison options.
type DiffConfig struct {
	Mode             string `mapstructure:"mode" yaml:"mode"` // "line" (default) or "word"
	IgnoreCase       bool   `mapstructure:"ignore_case" yaml:"ignore_case"`
	IgnoreWhitespace bool   `mapstructure:"ignore_whitespace" yaml:"ignore_whitespace"` // line mode only
	Algorithm        string `mapstructure:"algorithm" yaml:"algorithm"`                 // "lcs" (default) or "myers"

	// MaxCells bounds the LCS table size. Zero or less disables the guard.
	MaxCells int `mapstructure:"max_cells" yaml:"max_cells"`
}

// CacheConfig controls the in-process result cache.
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled" yaml:"enabled"`
	MaxEntries int           `mapstructure:"max_entries" yaml:"max_entries"`
	TTL        time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// WatchConfig controls `textdiff watch`.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format      string `mapstructure:"format" yaml:"format"` // unified, side-by-side, json, stats
	LineNumbers bool   `mapstructure:"line_numbers" yaml:"line_numbers"`
	Width       int    `mapstructure:"width" yaml:"width"` // total side-by-side width
}

// TracingConfig holds OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter" yaml:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/textdiff/traces/traces.jsonl
	FilePath string `mapstructure:"file_path" yaml:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// Output formats.
const (
	FormatUnified    = "unified"
	FormatSideBySide = "side-by-side"
	FormatJSON       = "json"
	FormatStats      = "stats"
)

// Alignment algorithms.
const (
	AlgorithmLCS   = "lcs"
	AlgorithmMyers = "myers"
)

// DefaultMaxCells caps the LCS table at roughly 16M cells.
const DefaultMaxCells = 16_000_000

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/textdiff/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	dir := paths.UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Diff: DiffConfig{
			Mode:      textdiff.ModeLine.String(),
			Algorithm: AlgorithmLCS,
			MaxCells:  DefaultMaxCells,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 256,
			TTL:        10 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Output: OutputConfig{
			Format: FormatUnified,
			Width:  120,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Options converts the diff section to engine options.
func (d DiffConfig) Options() textdiff.Options {
	return textdiff.Options{
		IgnoreCase:       d.IgnoreCase,
		IgnoreWhitespace: d.IgnoreWhitespace,
	}
}

// TracingProviderConfig converts the tracing section for tracing.NewProvider,
// filling in the default trace file path.
func (t TracingConfig) TracingProviderConfig() tracing.Config {
	path := t.FilePath
	if path == "" {
		path = DefaultTracesFilePath()
	}
	return tracing.Config{
		Enabled:      t.Enabled,
		Exporter:     t.Exporter,
		FilePath:     path,
		OTLPEndpoint: t.OTLPEndpoint,
		SampleRate:   t.SampleRate,
		ServiceName:  tracing.DefaultServiceName,
	}
}

// Validate checks every section and returns the first error found.
func (c Config) Validate() error {
	if err := ValidateDiff(c.Diff); err != nil {
		return err
	}
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if err := ValidateWatch(c.Watch); err != nil {
		return err
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateDiff checks diff configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateDiff(diff DiffConfig) error {
	if _, err := textdiff.ParseMode(diff.Mode); err != nil {
		return fmt.Errorf("diff.mode: %w", err)
	}

	switch diff.Algorithm {
	case "", AlgorithmLCS, AlgorithmMyers:
	default:
		return fmt.Errorf("diff.algorithm must be %q or %q, got %q", AlgorithmLCS, AlgorithmMyers, diff.Algorithm)
	}

	return nil
}

// ValidateCache checks cache configuration for errors.
func ValidateCache(cache CacheConfig) error {
	if cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must not be negative, got %d", cache.MaxEntries)
	}
	if cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", cache.TTL)
	}
	return nil
}

// ValidateWatch checks watch configuration for errors.
func ValidateWatch(watch WatchConfig) error {
	if watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", watch.Debounce)
	}
	return nil
}

// ValidateOutput checks output configuration for errors.
func ValidateOutput(output OutputConfig) error {
	switch output.Format {
	case "", FormatUnified, FormatSideBySide, FormatJSON, FormatStats:
	default:
		return fmt.Errorf("output.format must be one of %q, %q, %q or %q, got %q",
			FormatUnified, FormatSideBySide, FormatJSON, FormatStats, output.Format)
	}

	// Two columns plus the separator need some room.
	if output.Width != 0 && output.Width < 20 {
		return fmt.Errorf("output.width must be at least 20, got %d", output.Width)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// The file path falls back to DefaultTracesFilePath, so only otlp needs an explicit value.
	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# textdiff configuration

diff:
  mode: line              # "line" (default) or "word"
  ignore_case: false
  ignore_whitespace: false  # Trim each line before comparing (line mode only)
  algorithm: lcs          # "lcs" (default) or "myers"
  max_cells: 16000000     # Refuse LCS tables larger than this; 0 disables the guard

# Result cache for repeated comparisons (used by "textdiff watch")
cache:
  enabled: true
  max_entries: 256
  ttl: 10m

watch:
  debounce: 200ms         # Coalesce bursts of file events

output:
  format: unified         # unified, side-by-side, json or stats
  line_numbers: false
  width: 120              # Total width of side-by-side output

# OpenTelemetry tracing
tracing:
  enabled: false
  exporter: file          # none, file, stdout or otlp
  # file_path: ~/.config/textdiff/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Feature flags
# flags:
#   myers-fallback: true  # Use Myers instead of failing when max_cells is exceeded
#   cache-refresh: true   # Extend cache TTL on every hit
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
