// Package filter provides order-preserving transforms over article sequences.
package filter

import "headlines/internal/models"

// Deduplicate keeps the first article for each exact title.
// The input slice is left untouched.
func Deduplicate(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]models.Article, 0, len(articles))

	for _, article := range articles {
		if _, ok := seen[article.Title]; ok {
			continue
		}

		seen[article.Title] = struct{}{}
		unique = append(unique, article)
	}

	return unique
}
