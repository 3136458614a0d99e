// Package keymap turns parsed config bindings into the key map shown by the
// overlay, falling back to built-in defaults when the config has none.
package keymap

import (
	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/hyprconf"
	"github.com/hyprhelp/hyprhelp/internal/logging"
)

// Build picks the parsed bindings when there are any, otherwise the defaults
// under FallbackModifier. There is no per-binding merge.
func Build(parsed hyprconf.Result, defaults *domain.KeyMap) *domain.KeyMap {
	if !parsed.Empty() {
		return parsed.Bindings.WithModifier(parsed.Modifier)
	}
	if defaults == nil {
		return domain.NewKeyMap(FallbackModifier)
	}
	return defaults.WithModifier(FallbackModifier)
}

// IsFallback reports whether km was produced from the defaults
func IsFallback(km *domain.KeyMap) bool {
	return km != nil && km.Modifier == FallbackModifier
}

// DisplayModifier is the modifier to print next to a key. The fallback
// sentinel reads as the plain default modifier.
func DisplayModifier(km *domain.KeyMap) string {
	if km == nil {
		return ""
	}
	if IsFallback(km) {
		return hyprconf.DefaultModifier
	}
	return km.Modifier
}

// Load parses the config at path and builds the key map from it
func Load(path string, opts hyprconf.Options) *domain.KeyMap {
	km := Build(hyprconf.ParseFile(path, opts), Defaults())
	logging.Logger.Info("Key map built",
		"path", path,
		"modifier", km.Modifier,
		"bindings", km.Len(),
		"fallback", IsFallback(km))
	return km
}
