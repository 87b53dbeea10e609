package export

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"headlines/internal/config"
	"headlines/internal/models"

	"github.com/xuri/excelize/v2"
)

var sampleArticles = []models.Article{
	{Title: "Markets rally", Source: "BBC News", Date: "2024-01-01", URL: "https://example.com/a?x=1&y=2"},
	{Title: `Quote "inside", comma`, Source: "CNN", Date: "2024-01-02", URL: "https://example.com/b"},
	{Title: "東京 <update>", Source: "NHK", Date: "2024-01-03", URL: "https://example.com/c"},
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "data", "news_data.json"))

	if err := store.Save(sampleArticles); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, sampleArticles) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, sampleArticles)
	}
}

func TestSnapshotStore_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news_data.json")
	store := NewSnapshotStore(path)

	if err := store.Save(sampleArticles[:1]); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	want := `[
    {
        "title": "Markets rally",
        "source": "BBC News",
        "date": "2024-01-01",
        "url": "https://example.com/a?x=1&y=2"
    }
]
`
	if string(data) != want {
		t.Errorf("snapshot = %q, want %q", data, want)
	}
}

func TestSnapshotStore_EmptyAndOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news_data.json")
	store := NewSnapshotStore(path)

	if err := store.Save(sampleArticles); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty snapshot = %q, want []", data)
	}

	loaded, err := store.Load()
	if err != nil || len(loaded) != 0 {
		t.Errorf("Load() = %v, %v", loaded, err)
	}
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "missing.json"))

	if _, err := store.Load(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestCSVExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "news.csv")
	exp := NewCSVExporter(path)

	if err := exp.Export(sampleArticles); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	want := "title,source,date,url\r\n" +
		"Markets rally,BBC News,2024-01-01,https://example.com/a?x=1&y=2\r\n" +
		"\"Quote \"\"inside\"\", comma\",CNN,2024-01-02,https://example.com/b\r\n" +
		"東京 <update>,NHK,2024-01-03,https://example.com/c\r\n"

	if string(data) != want {
		t.Errorf("csv = %q\nwant %q", data, want)
	}

	if exp.Name() != FormatCSV || exp.Path() != path {
		t.Errorf("unexpected exporter identity %s %s", exp.Name(), exp.Path())
	}
}

func TestExcelExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.xlsx")
	exp := NewExcelExporter(path, "")

	if err := exp.Export(sampleArticles); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "News" {
		t.Fatalf("sheets = %v, want [News]", sheets)
	}

	rows, err := f.GetRows("News")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	want := [][]string{models.ArticleFields}
	for _, a := range sampleArticles {
		want = append(want, a.Fields())
	}

	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v\nwant %v", rows, want)
	}
}

func TestExporters_EmptyInputSkips(t *testing.T) {
	dir := t.TempDir()

	exporters := []Exporter{
		NewCSVExporter(filepath.Join(dir, "news.csv")),
		NewExcelExporter(filepath.Join(dir, "news.xlsx"), "Sheet"),
	}

	for _, exp := range exporters {
		t.Run(exp.Name(), func(t *testing.T) {
			for _, input := range [][]models.Article{nil, {}} {
				if err := exp.Export(input); !errors.Is(err, ErrNothingToExport) {
					t.Errorf("Export(empty) error = %v, want ErrNothingToExport", err)
				}
			}

			if _, err := os.Stat(exp.Path()); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("file %s should not exist, stat err = %v", exp.Path(), err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	out := config.OutputConfig{Dir: "/tmp/out", CSV: "news.csv", Excel: "news.xlsx", Sheet: "Headlines"}

	exp, err := New("", out)
	if err != nil || exp != nil {
		t.Errorf("New(\"\") = %v, %v; want nil, nil", exp, err)
	}

	exp, err = New("CSV", out)
	if err != nil {
		t.Fatalf("New(CSV) error: %v", err)
	}

	if exp.Name() != FormatCSV || exp.Path() != filepath.Join("/tmp/out", "news.csv") {
		t.Errorf("New(CSV) = %s %s", exp.Name(), exp.Path())
	}

	exp, err = New("xlsx", out)
	if err != nil {
		t.Fatalf("New(xlsx) error: %v", err)
	}

	xl, ok := exp.(*ExcelExporter)
	if !ok || xl.sheet != "Headlines" || xl.Path() != filepath.Join("/tmp/out", "news.xlsx") {
		t.Errorf("New(xlsx) = %#v", exp)
	}

	if _, err := New("pdf", out); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("New(pdf) error = %v", err)
	}
}
