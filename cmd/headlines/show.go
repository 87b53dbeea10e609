package main

import (
	"fmt"

	"headlines/internal/export"
	"headlines/internal/filter"
	"headlines/internal/formatter"

	"github.com/spf13/cobra"
)

func newShowCmd(parent *options) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the last saved snapshot without fetching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// persistent flags are bound to the root's options
			opts.configPath = parent.configPath
			opts.outputDir = parent.outputDir
			opts.logLevel = parent.logLevel

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			style, err := formatter.ParseStyle(opts.table)
			if err != nil {
				return err
			}

			articles, err := export.NewSnapshotStore(cfg.Output.SnapshotPath()).Load()
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}

			articles = filter.Apply(articles, filter.Criteria{Source: opts.source, Date: opts.date})

			return formatter.Render(cmd.OutOrStdout(), articles, style)
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "", "keep articles whose source contains this text (case-insensitive)")
	cmd.Flags().StringVar(&opts.date, "date", "", "keep articles published on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.table, "table", "grid", "table style: grid or markdown")

	return cmd
}
