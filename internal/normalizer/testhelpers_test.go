package normalizer

import "headlines/internal/models"

func strPtr(s string) *string {
	return &s
}

func rawArticle(title, source, publishedAt, url string) models.RawArticle {
	return models.RawArticle{
		Title:       strPtr(title),
		Source:      &models.RawSource{Name: strPtr(source)},
		PublishedAt: strPtr(publishedAt),
		URL:         strPtr(url),
	}
}
