// Package pipeline runs one fetch → normalize → dedupe → filter → present → persist → export pass.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"headlines/internal/export"
	"headlines/internal/filter"
	"headlines/internal/formatter"
	"headlines/internal/logger"
	"headlines/internal/models"
	"headlines/internal/normalizer"
)

// NothingToExportNotice is printed when an export is skipped for empty input.
const NothingToExportNotice = "No data to export."

// Fetcher retrieves raw headline records.
type Fetcher interface {
	Name() string
	FetchHeadlines(ctx context.Context, keyword string) ([]models.RawArticle, error)
}

// Options holds the per-run inputs.
type Options struct {
	Keyword  string
	Criteria filter.Criteria
}

// Result summarizes a completed run.
type Result struct {
	Articles   []models.Article
	FetchErr   error
	Snapshot   string
	ExportPath string
	Fetched    int
	Unique     int
	Filtered   int
	Exported   bool
}

// Pipeline wires the stages together. Exporter may be nil.
type Pipeline struct {
	fetcher   Fetcher
	processor *normalizer.Processor
	snapshot  *export.SnapshotStore
	exporter  export.Exporter
	log       *logger.Logger
	out       io.Writer
	style     formatter.Style
}

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Fetcher   Fetcher
	Processor *normalizer.Processor
	Snapshot  *export.SnapshotStore
	Exporter  export.Exporter
	Logger    *logger.Logger
	Out       io.Writer
	Style     formatter.Style
}

// New creates a pipeline from its dependencies.
func New(d Deps) *Pipeline {
	log := d.Logger
	if log == nil {
		log = logger.Discard()
	}

	out := d.Out
	if out == nil {
		out = io.Discard
	}

	if d.Fetcher != nil {
		log = log.With("provider", d.Fetcher.Name())
	}

	processor := d.Processor
	if processor == nil {
		processor = normalizer.NewProcessor(true, log)
	}

	return &Pipeline{
		fetcher:   d.Fetcher,
		processor: processor,
		snapshot:  d.Snapshot,
		exporter:  d.Exporter,
		log:       log,
		out:       out,
		style:     d.Style,
	}
}

// Run executes the stages in order. Fetch failures degrade to an empty
// sequence; normalization (strict mode) and filesystem failures abort.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	res := &Result{}

	p.log.Info("Program started",
		"keyword", opts.Keyword,
		"source", opts.Criteria.Source,
		"date", opts.Criteria.Date,
		"strict", p.processor.Strict(),
	)

	raws, err := p.fetch(ctx, opts.Keyword)
	if err != nil {
		res.FetchErr = err
	}

	res.Fetched = len(raws)
	p.log.Info("Articles fetched", "count", res.Fetched)

	articles, err := p.processor.Process(raws)
	if err != nil {
		p.log.Error("Normalization failed", "error", err)

		return res, fmt.Errorf("normalize: %w", err)
	}

	articles = filter.Deduplicate(articles)
	res.Unique = len(articles)
	p.log.Info("Removed duplicates", "remaining", res.Unique)

	articles = filter.Apply(articles, opts.Criteria)
	res.Filtered = len(articles)
	res.Articles = articles
	p.log.Info("Filtered news", "count", res.Filtered, "active", !opts.Criteria.IsZero())

	if err := formatter.Render(p.out, articles, p.style); err != nil {
		return res, fmt.Errorf("display: %w", err)
	}

	if p.snapshot != nil {
		if err := p.snapshot.Save(articles); err != nil {
			p.log.Error("Snapshot save failed", "path", p.snapshot.Path(), "error", err)

			return res, fmt.Errorf("snapshot: %w", err)
		}

		res.Snapshot = p.snapshot.Path()
		p.log.Info("News data saved to JSON", "path", res.Snapshot, "count", len(articles))
	}

	if err := p.export(articles, res); err != nil {
		return res, err
	}

	p.log.Info("Program finished", "duration", time.Since(start).Round(time.Millisecond))

	return res, nil
}

// fetch calls the provider and maps every failure to an empty sequence.
func (p *Pipeline) fetch(ctx context.Context, keyword string) ([]models.RawArticle, error) {
	p.log.Info("Fetching news", "keyword", keyword)

	if p.fetcher == nil {
		return nil, nil
	}

	raws, err := p.fetcher.FetchHeadlines(ctx, keyword)
	if err != nil {
		p.log.Error("Error fetching news", "error", err)

		return nil, err
	}

	return raws, nil
}

func (p *Pipeline) export(articles []models.Article, res *Result) error {
	if p.exporter == nil {
		return nil
	}

	err := p.exporter.Export(articles)

	switch {
	case errors.Is(err, export.ErrNothingToExport):
		p.log.Warn("Export skipped: no data", "format", p.exporter.Name())

		return formatter.Warning(p.out, NothingToExportNotice)
	case err != nil:
		p.log.Error("Export failed", "format", p.exporter.Name(), "path", p.exporter.Path(), "error", err)

		return fmt.Errorf("export %s: %w", p.exporter.Name(), err)
	}

	res.Exported = true
	res.ExportPath = p.exporter.Path()
	p.log.Info("Exported news", "format", p.exporter.Name(), "path", res.ExportPath, "count", len(articles))

	return formatter.Success(p.out, "Saved to "+res.ExportPath)
}
