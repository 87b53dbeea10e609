package main

import (
	"fmt"

	"headlines/internal/config"
	"headlines/internal/export"
	"headlines/internal/filter"
	"headlines/internal/formatter"
	"headlines/internal/logger"
	"headlines/internal/newsapi"
	"headlines/internal/normalizer"
	"headlines/internal/pipeline"

	"github.com/spf13/cobra"
)

type options struct {
	keyword    string
	source     string
	date       string
	exportFmt  string
	configPath string
	outputDir  string
	logLevel   string
	table      string
	lenient    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "headlines",
		Short:         "News Aggregator CLI",
		Long:          "headlines fetches top headlines, removes duplicate titles, filters them and prints, saves and exports the result.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.exportFmt == "" {
				return nil
			}

			_, err := export.NormalizeFormat(opts.exportFmt)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, opts)
		},
	}

	root.Flags().StringVar(&opts.keyword, "keyword", "", "search term passed to the headline feed")
	root.Flags().StringVar(&opts.exportFmt, "export", "", "export format: csv or excel")
	addCommonFlags(root, opts)

	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "headlines %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	return root
}

// addCommonFlags registers the filter and configuration flags shared by
// the root and show commands.
func addCommonFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.source, "source", "", "keep articles whose source contains this text (case-insensitive)")
	cmd.Flags().StringVar(&opts.date, "date", "", "keep articles published on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.table, "table", "grid", "table style: grid or markdown")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.outputDir, "output-dir", "", "directory for snapshot, exports and log (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "skip malformed articles instead of failing")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	if opts.lenient {
		cfg.Features.StrictValidation = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

func runPipeline(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	style, err := formatter.ParseStyle(opts.table)
	if err != nil {
		return err
	}

	log, err := logger.NewFileLogger(cfg.LogPath(), cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Loaded config", "config", cfg.String())

	exporter, err := export.New(opts.exportFmt, cfg.Output)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.Deps{
		Fetcher:   newsapi.NewClient(cfg.Provider, cfg.LoadAPIKey()),
		Processor: normalizer.NewProcessor(cfg.Features.StrictValidation, log),
		Snapshot:  export.NewSnapshotStore(cfg.Output.SnapshotPath()),
		Exporter:  exporter,
		Logger:    log,
		Out:       cmd.OutOrStdout(),
		Style:     style,
	})

	_, err = p.Run(cmd.Context(), pipeline.Options{
		Keyword:  opts.keyword,
		Criteria: filter.Criteria{Source: opts.source, Date: opts.date},
	})

	return err
}
