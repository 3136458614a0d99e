package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette is the fixed set of named colors the overlay draws with.
// It is built once at startup and passed by value.
type Palette struct {
	Accent     Color // Header, footer display name
	Background Color // Window background, text on highlighted keys
	Bound      Color // Background of keys that have a binding
	Foreground Color // Normal text, labels on bound keys
	Hover      Color // Background of the hovered key
	Locked     Color // Background of the locked key
	Muted      Color // Version and help text
	Unbound    Color // Label of keys without a binding
	UnboundBg  Color // Background of keys without a binding
	Urgent     Color // Fallback notice
	Warning    Color // Info panel title
}

// DefaultPalette returns the built-in dark palette
func DefaultPalette() Palette {
	return Palette{
		Accent:     "#89b4fa",
		Background: "#1e1e2e",
		Bound:      "#313244",
		Foreground: "#cdd6f4",
		Hover:      "#fab387",
		Locked:     "#89b4fa",
		Muted:      "#585b70",
		Unbound:    "#585b70",
		UnboundBg:  "#181825",
		Urgent:     "#f38ba8",
		Warning:    "#fab387",
	}
}

// WithOverrides returns a copy of the palette with the named colors replaced.
// Names are case-insensitive field names, e.g. {"hover": "#ff0000"}.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	for name, value := range overrides {
		if value == "" {
			return p, fmt.Errorf("color '%s' has empty value", name)
		}
		c := Color(value)
		switch strings.ToLower(name) {
		case "accent":
			p.Accent = c
		case "background", "bg":
			p.Background = c
		case "bound":
			p.Bound = c
		case "foreground", "fg":
			p.Foreground = c
		case "hover":
			p.Hover = c
		case "locked":
			p.Locked = c
		case "muted":
			p.Muted = c
		case "unbound":
			p.Unbound = c
		case "unbound_bg":
			p.UnboundBg = c
		case "urgent":
			p.Urgent = c
		case "warning":
			p.Warning = c
		default:
			return p, fmt.Errorf("unknown color '%s'", name)
		}
	}
	return p, nil
}
