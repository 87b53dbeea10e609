package filter

import (
	"strings"

	"headlines/internal/models"
)

// Predicate decides whether an article is kept.
type Predicate func(models.Article) bool

// Criteria holds the optional filters of a run. Empty fields are ignored.
type Criteria struct {
	Source string
	Date   string
}

// IsZero reports whether no filter is set.
func (c Criteria) IsZero() bool {
	return c.Source == "" && c.Date == ""
}

// Predicates returns one predicate per set field.
func (c Criteria) Predicates() []Predicate {
	var preds []Predicate

	if c.Source != "" {
		preds = append(preds, SourceContains(c.Source))
	}

	if c.Date != "" {
		preds = append(preds, DateEquals(c.Date))
	}

	return preds
}

// SourceContains matches articles whose source contains sub, ignoring case.
func SourceContains(sub string) Predicate {
	needle := strings.ToLower(sub)

	return func(a models.Article) bool {
		return strings.Contains(strings.ToLower(a.Source), needle)
	}
}

// DateEquals matches articles published on exactly date (YYYY-MM-DD).
// The date is compared as given, without parsing.
func DateEquals(date string) Predicate {
	return func(a models.Article) bool {
		return a.Date == date
	}
}

// Apply keeps the articles matching every criterion, in input order.
func Apply(articles []models.Article, c Criteria) []models.Article {
	return Where(articles, c.Predicates()...)
}

// Where keeps the articles matching all predicates.
func Where(articles []models.Article, preds ...Predicate) []models.Article {
	filtered := make([]models.Article, 0, len(articles))

	for _, article := range articles {
		if matchesAll(article, preds) {
			filtered = append(filtered, article)
		}
	}

	return filtered
}

func matchesAll(a models.Article, preds []Predicate) bool {
	for _, keep := range preds {
		if !keep(a) {
			return false
		}
	}

	return true
}
