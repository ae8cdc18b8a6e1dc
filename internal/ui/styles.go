package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorDarkGray = lipgloss.Color("8")
)

// Styles binds the palette to one output stream, so colour detection follows
// that stream rather than stdout
type Styles struct {
	renderer *lipgloss.Renderer

	Debug lipgloss.Style
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Attr  lipgloss.Style
	Err   lipgloss.Style
	Dim   lipgloss.Style
}

// NewStyles creates styles for w. Colour is disabled when noColor is set,
// when NO_COLOR is in the environment, or when w is not a terminal.
func NewStyles(w io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if noColor || termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		renderer: r,
		Debug:    r.NewStyle().Foreground(ColorDarkGray),
		Info:     r.NewStyle().Foreground(ColorCyan),
		Warn:     r.NewStyle().Foreground(ColorYellow).Bold(true),
		Error:    r.NewStyle().Foreground(ColorRed).Bold(true),
		Attr:     r.NewStyle().Foreground(ColorDarkGray),
		Err:      r.NewStyle().Foreground(ColorRed),
		Dim:      r.NewStyle().Foreground(ColorDarkGray),
	}
}

// LevelBadge renders a fixed-width level tag such as "[WARN] "
func (s *Styles) LevelBadge(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return s.Debug.Render("[DEBUG]")
	case level < slog.LevelWarn:
		return s.Info.Render("[INFO] ")
	case level < slog.LevelError:
		return s.Warn.Render("[WARN] ")
	default:
		return s.Error.Render("[ERROR]")
	}
}
