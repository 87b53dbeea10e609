package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"headlines/internal/models"
)

// CSVExporter writes comma-separated rows with a field-name header.
type CSVExporter struct {
	path string
}

// NewCSVExporter creates an exporter writing to path.
func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

// Name identifies the format.
func (e *CSVExporter) Name() string {
	return FormatCSV
}

// Path returns the output file location.
func (e *CSVExporter) Path() string {
	return e.path
}

// Export overwrites the CSV file with articles.
func (e *CSVExporter) Export(articles []models.Article) (err error) {
	if len(articles) == 0 {
		return ErrNothingToExport
	}

	if err := ensureDir(e.path); err != nil {
		return err
	}

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close CSV file: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	w.UseCRLF = true

	if err := w.Write(models.ArticleFields); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, a := range articles {
		if err := w.Write(a.Fields()); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
