package normalizer

import (
	"fmt"

	"headlines/internal/logger"
	"headlines/internal/models"
)

// Processor validates and transforms a batch of raw records.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	log         *logger.Logger
	strict      bool
}

// NewProcessor creates a processor. In strict mode the first malformed
// record fails the batch; otherwise malformed records are skipped and logged.
func NewProcessor(strict bool, log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
		log:         log,
		strict:      strict,
	}
}

// Strict reports whether malformed records abort processing.
func (p *Processor) Strict() bool {
	return p.strict
}

// Process converts raw records into Articles, keeping their order.
func (p *Processor) Process(raws []models.RawArticle) ([]models.Article, error) {
	articles := make([]models.Article, 0, len(raws))

	for i := range raws {
		raw := &raws[i]

		if err := p.validator.Validate(raw); err != nil {
			if p.strict {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}

			p.log.Warn("Skipping malformed record", "index", i, "error", err)

			continue
		}

		articles = append(articles, p.transformer.Transform(raw))
	}

	return articles, nil
}
