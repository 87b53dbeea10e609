// Package export persists article sequences as JSON snapshots, CSV and XLSX files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"headlines/internal/config"
	"headlines/internal/models"
)

// Export errors.
var (
	ErrNothingToExport = errors.New("nothing to export")
	ErrUnknownFormat   = errors.New("unknown export format")
)

// Supported export formats.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// Exporter writes an article sequence to a file.
// Empty input yields ErrNothingToExport and no file.
type Exporter interface {
	Name() string
	Path() string
	Export(articles []models.Article) error
}

// NormalizeFormat maps user input to a supported format name.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "csv":
		return FormatCSV, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	}

	return "", fmt.Errorf("%w: %q (valid: csv, excel)", ErrUnknownFormat, format)
}

// New returns the exporter for format using the configured output paths.
// An empty format means no export and returns a nil Exporter.
func New(format string, out config.OutputConfig) (Exporter, error) {
	if format == "" {
		return nil, nil
	}

	name, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}

	if name == FormatCSV {
		return NewCSVExporter(out.CSVPath()), nil
	}

	return NewExcelExporter(out.ExcelPath(), out.Sheet), nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}
