package models

// HeadlinesResponse is the top-headlines payload returned by the provider.
type HeadlinesResponse struct {
	Status       string       `json:"status"`
	Code         string       `json:"code,omitempty"`
	Message      string       `json:"message,omitempty"`
	Articles     []RawArticle `json:"articles"`
	TotalResults int          `json:"totalResults"`
}

// RawArticle is a provider record as received.
// Pointer fields stay nil when the key is absent or null.
type RawArticle struct {
	Source      *RawSource `json:"source"`
	Title       *string    `json:"title"`
	PublishedAt *string    `json:"publishedAt"`
	URL         *string    `json:"url"`
	Author      *string    `json:"author,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// RawSource identifies the publisher of a RawArticle.
type RawSource struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}
