package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"headlines/internal/models"
)

// SnapshotStore keeps the latest run's articles as an indented JSON array.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a store backed by path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the snapshot file location.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save overwrites the snapshot with articles, creating the directory if needed.
func (s *SnapshotStore) Save(articles []models.Article) error {
	if articles == nil {
		articles = []models.Article{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := ensureDir(s.path); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Load reads the snapshot back.
func (s *SnapshotStore) Load() ([]models.Article, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	articles := []models.Article{}
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", s.path, err)
	}

	return articles, nil
}
