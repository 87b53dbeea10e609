package formatter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorDim    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	noticeStyle  = lipgloss.NewStyle().Foreground(colorDim)
	warningStyle = lipgloss.NewStyle().Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
)

// Notice prints an informational line.
func Notice(w io.Writer, msg string) error {
	return writeLine(w, noticeStyle, msg)
}

// Warning prints a line that needs the user's attention.
func Warning(w io.Writer, msg string) error {
	return writeLine(w, warningStyle, msg)
}

// Success prints a completion line.
func Success(w io.Writer, msg string) error {
	return writeLine(w, successStyle, msg)
}

func writeLine(w io.Writer, style lipgloss.Style, msg string) error {
	_, err := fmt.Fprintln(w, style.Render(msg))

	return err
}
