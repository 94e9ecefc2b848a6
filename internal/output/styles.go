package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/shinji-kodama/skeleton/internal/model"
)

var (
	// ColorCyan is used for identifiable nouns: paths, component names, types.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files.
	ColorGreen = lipgloss.Color("82")

	// ColorBoldRed is used for failed files.
	ColorBoldRed = lipgloss.Color("204")
)

var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// StatusStyle returns the style for a file status. Unknown statuses
// return an unstyled default.
func StatusStyle(status model.FileStatus) lipgloss.Style {
	switch status {
	case model.FileCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case model.FileSkipped:
		return lipgloss.NewStyle().Faint(true)
	case model.FileFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatResult renders a one-line notice for a file result, e.g.
//
//	created  components/Button/Button.tsx
//	skipped  components/Button/index.ts (already exists)
func FormatResult(res model.FileResult) string {
	status := StatusStyle(res.Status).Render(fmt.Sprintf("%-8s", res.Status))
	line := fmt.Sprintf("%s %s", status, StyleNoun.Render(res.Output))
	switch res.Status {
	case model.FileSkipped:
		line += " (already exists)"
	case model.FileFailed:
		if res.Err != nil {
			line += ": " + res.Err.Error()
		}
	}
	return line
}

// FormatSummary renders the closing line of a generation run.
func FormatSummary(report *model.Report) string {
	return StyleSummary.Render(fmt.Sprintf("%s: %d created, %d skipped, %d failed",
		report.Target.Name,
		report.Count(model.FileCreated),
		report.Count(model.FileSkipped),
		report.Count(model.FileFailed)))
}
