package normalizer

import "headlines/internal/models"

// Transformer maps validated raw records onto Articles.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform builds an Article from a record that passed Validate.
// The publication timestamp is cut to its first ten characters.
func (t *Transformer) Transform(raw *models.RawArticle) models.Article {
	date, _ := datePrefix(*raw.PublishedAt)

	return models.Article{
		Title:  *raw.Title,
		Source: *raw.Source.Name,
		Date:   date,
		URL:    *raw.URL,
	}
}
