package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// appKeys are the overlay's own keyboard shortcuts. Typing a bound key symbol
// is handled separately and acts like clicking that key.
type appKeys struct {
	Quit   key.Binding
	Unlock key.Binding
}

func newAppKeys() appKeys {
	return appKeys{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
		Unlock: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "unlock"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k appKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Unlock, k.Quit}
}

// FullHelp implements help.KeyMap
func (k appKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
