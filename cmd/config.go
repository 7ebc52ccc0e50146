package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/config"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/flags"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/paths"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration as YAML: defaults, overlaid with the
config file, TEXTDIFF_* environment variables and command-line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := config.Render(cfg)
		if err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			out = "# " + used + "\n" + out
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default config file",
	Long: `Write the default configuration, with comments, to path
(default: .textdiff/config.yaml). An existing file is kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.ProjectConfigFile()
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value in the config file",
	Long: `Set a single dotted key in the config file, keeping comments and the
rest of the file intact. The file is the one in use, the --config path, or
.textdiff/config.yaml.

Examples:
  textdiff config set diff.algorithm myers
  textdiff config set output.width 160
  textdiff config set flags.myers-fallback true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := strings.ToLower(args[0]), args[1]

		path := viper.ConfigFileUsed()
		if path == "" {
			path = paths.ProjectConfigFile()
		}

		if err := validateSetting(path, key, value); err != nil {
			return err
		}

		if err := config.SetValue(path, key, value); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to update config", err, "path", path, "key", key)
			return err
		}

		log.Info(log.CatConfig, "Updated config", "path", path, "key", key)
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// validateSetting checks that key is known and that the file would still
// load with value applied.
func validateSetting(path, key, value string) error {
	v := viper.New()
	config.SetDefaults(v)

	if name, ok := strings.CutPrefix(key, "flags."); ok {
		if !slices.Contains(flags.Known(), name) {
			return fmt.Errorf("unknown feature flag %q (known: %s)", name, strings.Join(flags.Known(), ", "))
		}
	} else if !slices.Contains(v.AllKeys(), key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	v.Set(key, value)
	if _, err := config.Load(v); err != nil {
		return err
	}
	return nil
}
