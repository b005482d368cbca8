package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bashtech/gpacalc-crawler/internal/baseline"
	"github.com/bashtech/gpacalc-crawler/internal/catalog"
	"github.com/bashtech/gpacalc-crawler/internal/config"
	"github.com/bashtech/gpacalc-crawler/internal/crawler"
	"github.com/bashtech/gpacalc-crawler/internal/fetch"
	"github.com/bashtech/gpacalc-crawler/internal/grading"
	"github.com/bashtech/gpacalc-crawler/internal/logger"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Mode selects where new grading systems come from
type Mode string

const (
	ModeCountry  Mode = "country"
	ModeWorld    Mode = "world"
	ModeBaseline Mode = "countries"
)

type options struct {
	world      bool
	countries  bool
	catalog    string
	configPath string
	format     string
	sort       string
	dryRun     bool
	verbose    bool
	logLevel   string
	timeout    int
	maxPages   int
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gpacalc-crawler",
		Short: "Discover university grading scales and merge them into the GPA calculator catalog",
		Long: `Crawls institution websites for grading tables and merges the plausible ones into
grading-systems.json.

By default institutions are taken from the Wikipedia list of universities in India.
--world crawls every country list linked from the global index instead, and
--countries writes a fixed set of national baseline scales without any network access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.world, "world", false, "Crawl universities of every country linked from the global index")
	cmd.Flags().BoolVar(&opts.countries, "countries", false, "Merge the built-in national baseline scales (no network)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", catalog.DefaultPath, "Path to grading-systems.json")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Optional json5 config file")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, table or json")
	cmd.Flags().StringVar(&opts.sort, "sort", string(SortByID), "Summary order: id, name, country or scale")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Merge in memory but do not write the catalog")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", string(logger.LevelInfo), "Log level: debug, info, warn or error (--verbose implies debug)")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Per-request timeout in seconds (overrides config)")
	cmd.Flags().IntVar(&opts.maxPages, "max-pages", 0, "Pages visited per institution (overrides config)")

	cmd.MarkFlagsMutuallyExclusive("world", "countries")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, opts *options) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatTable && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text', 'table' or 'json')", opts.format)
	}
	order := SortOrder(strings.ToLower(opts.sort))
	if !validSortOrder(order) {
		return fmt.Errorf("invalid sort: %s (must be 'id', 'name', 'country' or 'scale')", opts.sort)
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	mode := ModeCountry
	switch {
	case opts.world:
		mode = ModeWorld
	case opts.countries:
		mode = ModeBaseline
	}

	existing, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", logger.Fields{
		"path":    cfg.CatalogPath,
		"version": existing.Version,
		"systems": len(existing.Systems),
	})

	cache := fetch.NewCache(cfg.CacheTTL())
	sweepCtx, stopSweep := context.WithCancel(cmd.Context())
	go cache.Sweep(sweepCtx, cfg.CacheTTL())

	start := time.Now()
	systems := discover(cmd.Context(), mode, cfg, cache)
	stopSweep()
	logger.SetGauge("fetch.cache_pages", float64(cache.Size()))
	logger.RecordTiming("discover", time.Since(start))
	logger.SetGauge("systems.discovered", float64(len(systems)))
	logger.Info("discovery finished", logger.Fields{
		"mode":     mode,
		"systems":  len(systems),
		"duration": time.Since(start).String(),
	})

	result := &OutputResult{
		RunAt:       time.Now().UTC(),
		Mode:        mode,
		CatalogPath: cfg.CatalogPath,
		Discovered:  len(systems),
		DryRun:      opts.dryRun,
	}

	if len(systems) > 0 {
		merged, stats := catalog.NewMerger(cfg.Country).Merge(existing, systems)
		logger.AddCounter("systems.rejected", int64(stats.Rejected))
		logger.AddCounter("systems.pruned", int64(stats.Pruned))
		logger.AddCounter("systems.merged", int64(stats.Added+stats.Updated))

		if !opts.dryRun {
			if err := catalog.Save(cfg.CatalogPath, merged); err != nil {
				return fmt.Errorf("saving catalog: %w", err)
			}
		}

		result.Version = merged.Version
		result.Stats = stats
		result.Systems = systems
		sortSystems(result.Systems, order)
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, opts.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Info("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	return nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") || cfg.CatalogPath == "" {
		cfg.CatalogPath = opts.catalog
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = opts.timeout
	}
	if flags.Changed("max-pages") {
		cfg.MaxPages = opts.maxPages
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// discover returns the systems produced by the selected mode
func discover(ctx context.Context, mode Mode, cfg config.Config, cache *fetch.Cache) []grading.GradingSystem {
	if mode == ModeBaseline {
		return baseline.Systems()
	}

	f := fetch.New(cfg.UserAgent, cfg.Timeout()).WithCache(cache)
	runner := crawler.NewRunner(f, crawler.NewExplorer(f, cfg.MaxPages, cfg.Keywords),
		cfg.CountryConcurrency, cfg.WorldConcurrency)

	if mode == ModeWorld {
		return runner.CrawlWorld(ctx, cfg.WorldIndexURL)
	}
	return runner.CrawlCountry(ctx, cfg.ListURL, cfg.Country, cfg.Region)
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
