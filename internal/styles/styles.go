// Package styles centralizes lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// BoldStyle emphasizes titles and results.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// HeaderStyle marks section headers in command output.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// ResultStyle highlights computed values.
	ResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// FaintStyle de-emphasizes supporting text.
	FaintStyle = lipgloss.NewStyle().Faint(true)
)

// RenderHeader renders a section header.
func RenderHeader(s string) string {
	return HeaderStyle.Render(s)
}

// RenderResult renders a computed value.
func RenderResult(s string) string {
	return ResultStyle.Render(s)
}
