package export

import (
	"fmt"

	"headlines/internal/models"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "News"

// ExcelExporter writes a single-sheet workbook.
type ExcelExporter struct {
	path  string
	sheet string
}

// NewExcelExporter creates an exporter writing sheet to path.
func NewExcelExporter(path, sheet string) *ExcelExporter {
	if sheet == "" {
		sheet = defaultSheet
	}

	return &ExcelExporter{path: path, sheet: sheet}
}

// Name identifies the format.
func (e *ExcelExporter) Name() string {
	return FormatExcel
}

// Path returns the output file location.
func (e *ExcelExporter) Path() string {
	return e.path
}

// Export overwrites the workbook with articles. Row 1 holds the field names.
func (e *ExcelExporter) Export(articles []models.Article) error {
	if len(articles) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), e.sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := e.writeRow(f, 1, models.ArticleFields); err != nil {
		return err
	}

	for i, a := range articles {
		if err := e.writeRow(f, i+2, a.Fields()); err != nil {
			return err
		}
	}

	if err := ensureDir(e.path); err != nil {
		return err
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := f.SetSheetRow(e.sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}

	return nil
}
