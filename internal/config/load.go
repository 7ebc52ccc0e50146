package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TEXTDIFF_DIFF_ALGORITHM.
const EnvPrefix = "TEXTDIFF"

// SetDefaults registers every default with v. Viper only consults the
// environment for keys it knows about, so this also enables env overrides.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("diff.mode", d.Diff.Mode)
	v.SetDefault("diff.ignore_case", d.Diff.IgnoreCase)
	v.SetDefault("diff.ignore_whitespace", d.Diff.IgnoreWhitespace)
	v.SetDefault("diff.algorithm", d.Diff.Algorithm)
	v.SetDefault("diff.max_cells", d.Diff.MaxCells)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.max_entries", d.Cache.MaxEntries)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.line_numbers", d.Output.LineNumbers)
	v.SetDefault("output.width", d.Output.Width)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
