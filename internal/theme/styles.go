package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles derived from a Palette
type Styles struct {
	AppName      lipgloss.Style
	Display      lipgloss.Style
	Fallback     lipgloss.Style
	Help         lipgloss.Style
	InfoDesc     lipgloss.Style
	InfoTitle    lipgloss.Style
	Version      lipgloss.Style
	keyCellStyle lipgloss.Style
}

// NewStyles builds the style set for a palette
func NewStyles(p Palette) Styles {
	return Styles{
		AppName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Padding(1, 0, 0, 0),

		Display: lipgloss.NewStyle().
			Foreground(p.Accent),

		Fallback: lipgloss.NewStyle().
			Foreground(p.Urgent),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted),

		InfoDesc: lipgloss.NewStyle().
			Foreground(p.Foreground),

		InfoTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Warning),

		Version: lipgloss.NewStyle().
			Foreground(p.Muted),

		keyCellStyle: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center),
	}
}

// KeyCell returns the style for one key cell of the given size and colors
func (s Styles) KeyCell(width, height int, fg, bg Color) lipgloss.Style {
	return s.keyCellStyle.
		Width(width).
		Height(height).
		Foreground(fg).
		Background(bg)
}
