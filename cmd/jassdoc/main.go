package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jward/jassdoc"
	"github.com/jward/jassdoc/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
	flagFrom    string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

// logger receives diagnostics and script log calls.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "jassdoc",
	Short:         "API reference generator for vJass",
	Long:          "jassdoc resolves declarations fed by Risor scripts and renders them as HTML pages and SQL tables.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		return validateFormat(flagFormat)
	},
	// No Run: prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .jassdoc/config.yml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every diagnostic")
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "load the pool from a snapshot instead of running scripts")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// loadConfig reads --config, or .jassdoc/config.yml under the working
// directory when it exists.
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.NewFileLoader(flagConfig).Load()
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting cwd: %w", err)
	}
	return config.NewLoader(cwd).Load()
}

// loadEngine builds an engine populated from --from or from the prelude and
// the declaration scripts. Scripts given as arguments replace the
// configured ones.
func loadEngine(ctx context.Context, cfg *config.Config, args []string) (*jassdoc.Engine, error) {
	if flagFrom != "" {
		f, err := os.Open(flagFrom)
		if err != nil {
			return nil, fmt.Errorf("opening snapshot: %w", err)
		}
		defer f.Close()
		return jassdoc.FromSnapshot(f, jassdoc.WithLogger(logger))
	}

	scriptPaths := cfg.Input.Scripts
	if len(args) > 0 {
		scriptPaths = args
	}
	if len(scriptPaths) == 0 {
		return nil, fmt.Errorf("no declaration scripts: pass them as arguments or set input.scripts")
	}

	e, err := jassdoc.New("", jassdoc.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if cfg.Input.Prelude {
		if err := e.LoadPrelude(ctx); err != nil {
			return nil, err
		}
	}
	for _, path := range scriptPaths {
		if err := e.LoadScript(ctx, path, nil); err != nil {
			return nil, err
		}
	}
	return e, nil
}
