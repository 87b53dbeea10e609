// Package formatter renders article sequences as console tables.
package formatter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"headlines/internal/models"

	"github.com/mattn/go-runewidth"
)

// NoResultsNotice is printed instead of an empty table.
const NoResultsNotice = "No news found."

// ErrUnknownStyle is returned by ParseStyle for unsupported names.
var ErrUnknownStyle = errors.New("unknown table style")

// Style selects the table layout.
type Style int

// Supported table layouts.
const (
	// StyleGrid draws +---+ borders around every row.
	StyleGrid Style = iota
	// StyleMarkdown draws a pipe table.
	StyleMarkdown
)

var tableHeader = []string{"No", "Title", "Source", "Date"}

// ParseStyle maps "grid" or "markdown" to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "grid":
		return StyleGrid, nil
	case "markdown", "md":
		return StyleMarkdown, nil
	}

	return StyleGrid, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// RenderTable writes articles as a grid table, or the no-results notice
// when there are none.
func RenderTable(w io.Writer, articles []models.Article) error {
	return Render(w, articles, StyleGrid)
}

// Render writes articles using the given style.
func Render(w io.Writer, articles []models.Article, style Style) error {
	if len(articles) == 0 {
		return Notice(w, NoResultsNotice)
	}

	table := [][]string{tableHeader}
	for i, a := range articles {
		table = append(table, []string{strconv.Itoa(i + 1), cell(a.Title), cell(a.Source), cell(a.Date)})
	}

	var lines []string
	if style == StyleMarkdown {
		lines = markdownLines(table, columnWidths(table))
	} else {
		lines = gridLines(table, columnWidths(table))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")

	return err
}

// cell flattens line breaks and tabs so a record stays on one aligned row.
func cell(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}

// columnWidths returns the display width of every column.
func columnWidths(table [][]string) []int {
	widths := make([]int, len(table[0]))

	for _, row := range table {
		for i, c := range row {
			if width := runewidth.StringWidth(c); width > widths[i] {
				widths[i] = width
			}
		}
	}

	return widths
}

// pad fills s to width display columns. The first column is right-aligned.
func pad(s string, width, col int) string {
	padding := width - runewidth.StringWidth(s)
	if padding <= 0 {
		return s
	}

	if col == 0 {
		return strings.Repeat(" ", padding) + s
	}

	return s + strings.Repeat(" ", padding)
}

func gridLines(table [][]string, widths []int) []string {
	border := func(fill string) string {
		var sb strings.Builder

		sb.WriteString("+")

		for _, w := range widths {
			sb.WriteString(strings.Repeat(fill, w+2))
			sb.WriteString("+")
		}

		return sb.String()
	}

	lines := []string{border("-")}

	for i, row := range table {
		lines = append(lines, pipeRow(row, widths))

		if i == 0 {
			lines = append(lines, border("="))
		} else {
			lines = append(lines, border("-"))
		}
	}

	return lines
}

func markdownLines(table [][]string, widths []int) []string {
	// separator needs at least "---"
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	lines := []string{pipeRow(table[0], widths), pipeRow(sep, widths)}
	for _, row := range table[1:] {
		lines = append(lines, pipeRow(row, widths))
	}

	return lines
}

func pipeRow(row []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, c := range row {
		sb.WriteString(" ")
		sb.WriteString(pad(c, widths[j], j))
		sb.WriteString(" |")
	}

	return sb.String()
}
