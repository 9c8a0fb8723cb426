package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jward/jassdoc"
	"github.com/jward/jassdoc/internal/config"
	"github.com/jward/jassdoc/internal/locale"
	"github.com/jward/jassdoc/internal/render"
	"github.com/spf13/cobra"
)

var (
	flagOut    string
	flagDB     string
	flagSQL    string
	flagSchema bool
	flagLocale string
	flagJobs   int
	flagTitle  string
)

var buildCmd = &cobra.Command{
	Use:   "build [script...]",
	Short: "Resolve declarations and write the reference pages",
	Long: "Load the prelude and the declaration scripts, resolve every object once, " +
		"render one page per object and optionally export the pool to SQLite or an SQL script.",
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output directory (default: output.dir)")
	buildCmd.Flags().StringVar(&flagDB, "db", "", "export to this SQLite database")
	buildCmd.Flags().StringVar(&flagSQL, "sql", "", "export to this SQL script")
	buildCmd.Flags().BoolVar(&flagSchema, "schema", false, "start the SQL script with CREATE TABLE statements")
	buildCmd.Flags().StringVar(&flagLocale, "locale", "", "page language, e.g. en or de")
	buildCmd.Flags().IntVar(&flagJobs, "jobs", 0, "objects rendered concurrently (0: GOMAXPROCS)")
	buildCmd.Flags().StringVar(&flagTitle, "title", "", "title of the reference")
}

// applyBuildFlags overrides configured values with the flags set on cmd.
func applyBuildFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.Dir = flagOut
	}
	if flags.Changed("db") {
		cfg.Export.Database = flagDB
	}
	if flags.Changed("sql") {
		cfg.Export.SQL = flagSQL
	}
	if flags.Changed("schema") {
		cfg.Export.Schema = flagSchema
	}
	if flags.Changed("locale") {
		cfg.Output.Locale = flagLocale
	}
	if flags.Changed("jobs") {
		cfg.Output.Jobs = flagJobs
	}
	if flags.Changed("title") {
		cfg.Output.Title = flagTitle
	}
	return config.Validate(cfg)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyBuildFlags(cmd, cfg); err != nil {
		return err
	}

	lc, err := locale.New(cfg.Output.Locale, cfg.Output.LocaleFiles...)
	if err != nil {
		return err
	}
	exclude, err := render.CompileExclude(cfg.Input.Exclude)
	if err != nil {
		return err
	}

	ctx := context.Background()
	totalStart := time.Now()

	e, err := loadEngine(ctx, cfg, args)
	if err != nil {
		return err
	}
	loadDuration := time.Since(totalStart)

	resolveStart := time.Now()
	rs, err := e.Resolve()
	if err != nil {
		return err
	}
	resolveDuration := time.Since(resolveStart)

	renderStart := time.Now()
	ps, err := e.Render(ctx, render.DirSink{Root: cfg.Output.Dir},
		render.WithLocale(lc),
		render.WithTitle(cfg.Output.Title),
		render.WithJobs(cfg.Output.Jobs),
		render.WithExclude(exclude),
	)
	if err != nil {
		return err
	}
	renderDuration := time.Since(renderStart)

	if err := export(e, cfg); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Built %s in %s (load: %s, resolve: %s, render: %s)\n",
		cfg.Output.Dir,
		time.Since(totalStart).Round(time.Millisecond),
		loadDuration.Round(time.Millisecond),
		resolveDuration.Round(time.Millisecond),
		renderDuration.Round(time.Millisecond),
	)
	printSummary(os.Stderr, rs, ps, e.Diagnostics())
	return nil
}

// export writes the configured relational targets.
func export(e *jassdoc.Engine, cfg *config.Config) error {
	if cfg.Export.Database != "" {
		if _, err := e.Export(cfg.Export.Database, cfg.Output.Title); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Database: %s\n", cfg.Export.Database)
	}
	if cfg.Export.SQL != "" {
		f, err := os.Create(cfg.Export.SQL)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.Export.SQL, err)
		}
		if _, err := e.WriteSQL(f, cfg.Export.Schema, cfg.Output.Title); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", cfg.Export.SQL, err)
		}
		fmt.Fprintf(os.Stderr, "SQL script: %s\n", cfg.Export.SQL)
	}
	return nil
}
