package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func (s *Styles) SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := s.renderer.NewStyle().Foreground(color)
	titleStyle := s.renderer.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// Preview renders a message body in a rounded box under a section header
func (s *Styles) Preview(title, body string) string {
	box := s.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDarkGray).
		Padding(0, 1).
		Render(strings.TrimRight(body, "\n"))

	return s.SectionHeader(title, ColorCyan) + "\n" + box + "\n"
}
