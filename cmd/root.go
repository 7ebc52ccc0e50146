package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/config"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
	"github.com/RayLabsHQ/formatfuse-sub003/internal/paths"
)

// ErrDifferent is returned with --exit-code when the documents differ.
var ErrDifferent = errors.New("documents differ")

// Exit codes follow diff(1): 0 identical, 1 different, 2 trouble.
const (
	exitDifferent = 1
	exitTrouble   = 2
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "textdiff [flags] FILE1 FILE2",
	Short: "Compare two text documents line by line or word by word",
	Long: `Compare two text documents and print the differences.

Documents are compared line by line (default) or word by word using a
longest-common-subsequence alignment. Use "-" to read one side from stdin.

Examples:
  # Unified output
  textdiff old.txt new.txt

  # Word-level, case-insensitive
  textdiff --words --ignore-case old.txt new.txt

  # Side-by-side with line numbers
  textdiff -f side-by-side -n old.txt new.txt

  # Machine-readable
  textdiff -f json old.txt new.txt | jq '.stats'

  # Compare stdin against a file, exit 1 when they differ
  generate | textdiff --exit-code - expected.txt`,
	Version:           version,
	Args:              cobra.ExactArgs(2),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .textdiff/config.yaml, then ~/.config/textdiff/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs to $TEXTDIFF_LOG (default: debug.log)")

	addDiffFlags(rootCmd)
	rootCmd.Flags().Bool("exit-code", false, "exit with status 1 when the documents differ")
}

// addDiffFlags registers the comparison and output flags shared by the root
// and watch commands.
func addDiffFlags(c *cobra.Command) {
	c.Flags().BoolP("words", "w", false, "compare word by word instead of line by line")
	c.Flags().BoolP("ignore-case", "i", false, "ignore case differences")
	c.Flags().BoolP("ignore-whitespace", "b", false, "ignore leading and trailing whitespace on each line")
	c.Flags().StringP("format", "f", "", "output format: unified, side-by-side, json or stats")
	c.Flags().BoolP("line-numbers", "n", false, "show line numbers")
	c.Flags().Int("width", 0, "total width of side-by-side output")
	c.Flags().String("algorithm", "", "alignment algorithm: lcs or myers")
}

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"ignore-case":       "diff.ignore_case",
	"ignore-whitespace": "diff.ignore_whitespace",
	"algorithm":         "diff.algorithm",
	"format":            "output.format",
	"line-numbers":      "output.line_numbers",
	"width":             "output.width",
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	path := paths.ResolveConfigFile(cfgFile)
	if path == "" {
		// Running without any config file is normal; defaults apply.
		return
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		configErr = fmt.Errorf("reading config: %w", err)
	}
}

// setup binds explicitly set flags over file and env values, starts debug
// logging and loads the effective configuration.
func setup(cmd *cobra.Command, _ []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	if configErr != nil {
		return configErr
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
	}
	if words, _ := cmd.Flags().GetBool("words"); words {
		viper.Set("diff.mode", "word")
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = loaded

	log.Debug(log.CatConfig, "Configuration loaded",
		"file", viper.ConfigFileUsed(),
		"mode", cfg.Diff.Mode,
		"algorithm", cfg.Diff.Algorithm,
		"format", cfg.Output.Format)
	return nil
}

var logCleanup func()

func initLogging() error {
	if logCleanup != nil {
		return nil
	}
	if os.Getenv("TEXTDIFF_DEBUG") == "" && !debugFlag {
		return nil
	}

	logPath := os.Getenv("TEXTDIFF_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.Init(logPath)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logCleanup = cleanup

	log.Info(log.CatCLI, "textdiff starting", "version", version, "logPath", logPath)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := newDiffEnv(cfg)
	if err != nil {
		return err
	}
	defer env.close()

	mode, err := parseMode(cfg)
	if err != nil {
		return err
	}

	res, err := env.diffFiles(ctx, cmd.InOrStdin(), args[0], args[1], mode, cfg.Diff.Options())
	if err != nil {
		return err
	}

	if err := render(cmd.OutOrStdout(), res, cfg.Output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if exitCode, _ := cmd.Flags().GetBool("exit-code"); exitCode && !res.Stats.Identical() {
		return ErrDifferent
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(context.Background())
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrDifferent):
		return exitDifferent
	default:
		return exitTrouble
	}
}

// ReportError prints err to w unless it only signals differing documents.
func ReportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrDifferent) {
		return
	}
	_, _ = fmt.Fprintln(w, "Error:", err)
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
