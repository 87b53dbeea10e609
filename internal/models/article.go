// Package models defines data structures shared by the fetch, normalize and export stages.
package models

// ArticleFields lists the Article field names in declaration order.
// Exported tables use it as their header row.
var ArticleFields = []string{"title", "source", "date", "url"}

// Article represents a normalized news headline.
type Article struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

// Fields returns the field values in the same order as ArticleFields.
func (a Article) Fields() []string {
	return []string{a.Title, a.Source, a.Date, a.URL}
}
