package interaction

import (
	"fmt"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/keymap"
	"github.com/hyprhelp/hyprhelp/internal/theme"
)

// Placeholder is the info text shown when no key is hovered or locked
const Placeholder = "Hover a key to preview | Click to lock"

// KeyDisplay is how a single key cell is drawn
type KeyDisplay struct {
	Background  theme.Color
	Foreground  theme.Color
	Interactive bool
	Label       string
}

// Info is the two-line info panel
type Info struct {
	Description string
	Title       string
}

// View is everything the surface needs to draw one frame
type View struct {
	Info Info
	Keys map[domain.Symbol]KeyDisplay
}

// Render computes the display for every key of layout and the info panel.
// It has no side effects.
func Render(km *domain.KeyMap, st State, layout Layout, p theme.Palette) View {
	keys := make(map[domain.Symbol]KeyDisplay)
	for _, row := range layout.Rows {
		for _, k := range row {
			keys[k] = keyDisplay(km, st, k, p)
		}
	}
	return View{Info: info(km, st), Keys: keys}
}

func keyDisplay(km *domain.KeyMap, st State, k domain.Symbol, p theme.Palette) KeyDisplay {
	d := KeyDisplay{Label: k.String()}
	if !km.Has(k) {
		d.Foreground = p.Unbound
		d.Background = p.UnboundBg
		return d
	}

	d.Interactive = true
	switch {
	case st.Locked == k:
		d.Foreground = p.Background
		d.Background = p.Locked
	case st.Locked.IsZero() && st.Hovered == k:
		d.Foreground = p.Background
		d.Background = p.Hover
	default:
		d.Foreground = p.Foreground
		d.Background = p.Bound
	}
	return d
}

func info(km *domain.KeyMap, st State) Info {
	if !st.Locked.IsZero() {
		if b, ok := km.Get(st.Locked); ok {
			return Info{
				Title:       fmt.Sprintf("LOCKED: %s", b.Title),
				Description: b.Description,
			}
		}
	}
	if st.Locked.IsZero() && !st.Hovered.IsZero() {
		if b, ok := km.Get(st.Hovered); ok {
			return Info{
				Title:       fmt.Sprintf("%s + %s: %s", keymap.DisplayModifier(km), b.Key, b.Title),
				Description: b.Description,
			}
		}
	}
	return Info{Description: Placeholder}
}
