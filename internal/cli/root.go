package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/charliek/logview/internal/appinfo"
	"github.com/charliek/logview/internal/config"
	"github.com/charliek/logview/internal/constants"
	"github.com/charliek/logview/internal/domain"
	"github.com/charliek/logview/internal/export"
	"github.com/charliek/logview/internal/filter"
	"github.com/charliek/logview/internal/source"
	"github.com/charliek/logview/internal/summary"
	"github.com/charliek/logview/internal/tui"
)

// Version is set during build
var Version = "dev"

// Global flags
var (
	configPath string
	sourcePath string
	sinceFlag  string
	exportDir  string
	verbose    bool
)

// rootCmd represents the base command; running it without a subcommand
// opens the interactive browser.
var rootCmd = &cobra.Command{
	Use:   "logview",
	Short: "Browse and export application log history",
	Long: `logview browses an application's runtime log history, narrowing a
large log stream down to what matters by subsystem and category, and
exports the narrowed view as a shareable archive. It supports:
  - Subsystem and category filter menus that stay coherent across refreshes
  - Deterministic filtering with human-readable filter summaries
  - Plain-text archive export of the filtered view
  - A read-only HTTP API for remote inspection`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		return tui.Run(deps.reconciler, deps.source, deps.formatter, deps.exporter, tui.Options{
			Window:    deps.window,
			ExportDir: exportDir,
		})
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("logview version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVar(&sourcePath, "source", "", "Log source file (JSON lines); overrides config")
	rootCmd.PersistentFlags().StringVar(&sinceFlag, "since", "", "Fetch window, e.g. 30m or 2h; overrides config")
	rootCmd.PersistentFlags().StringVar(&exportDir, "export-dir", ".", "Directory for exported archives")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.SetVersionTemplate("logview version {{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
}

// deps bundles the collaborators assembled from config and flags
type deps struct {
	cfg        *config.Config
	logger     *slog.Logger
	source     source.Source
	reconciler *filter.Reconciler
	formatter  *summary.Formatter
	exporter   *export.Exporter
	window     time.Duration
}

// buildDeps loads configuration and wires up the application graph.
// A missing config file falls back to defaults so logview works with
// flags alone.
func buildDeps() (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, err
		}
		cfg = config.Default()
	}

	if sourcePath != "" {
		cfg.Source.Path = sourcePath
	}
	if sinceFlag != "" {
		if _, err := time.ParseDuration(sinceFlag); err != nil {
			return nil, fmt.Errorf("invalid --since value %q: %w", sinceFlag, err)
		}
		cfg.Since = sinceFlag
	}
	if cfg.Source.Path == "" {
		return nil, fmt.Errorf("no log source configured (set --source or source.path in %s)", configPath)
	}

	logger := newLogger(verbose)
	src := source.NewFileSource(cfg.Source.Path, logger)
	formatter := summary.NewFormatter(summary.NewDefaultListFormatter())
	identity := appinfo.NewProvider(cfg.AppName)

	return &deps{
		cfg:        cfg,
		logger:     logger,
		source:     src,
		reconciler: filter.NewReconciler(cfg.DefaultSubsystems),
		formatter:  formatter,
		exporter:   export.NewExporter(identity, formatter),
		window:     cfg.SinceWindow(),
	}, nil
}

// newLogger builds the process logger; verbose enables debug level
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
