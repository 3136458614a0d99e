package interaction

import "github.com/hyprhelp/hyprhelp/internal/domain"

// Layout is the physical key arrangement shown on screen, row by row
type Layout struct {
	Rows [][]domain.Symbol
}

// DefaultLayout returns function keys, digits, the three letter rows and a
// navigation row
func DefaultLayout() Layout {
	return Layout{Rows: [][]domain.Symbol{
		{"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12"},
		{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
		{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
		{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
		{"Z", "X", "C", "V", "B", "N", "M"},
		{domain.SymbolLeft, domain.SymbolDown, domain.SymbolUp, domain.SymbolRight, domain.SymbolEnter},
	}}
}

// Contains reports whether k is part of the layout
func (l Layout) Contains(k domain.Symbol) bool {
	for _, row := range l.Rows {
		for _, s := range row {
			if s == k {
				return true
			}
		}
	}
	return false
}

// WithExtras appends a row holding bound keys the layout has no place for
// (e.g. SPACE, PRINT), in KeyMap order. The layout is returned unchanged when
// every bound key already has a cell.
func (l Layout) WithExtras(km *domain.KeyMap) Layout {
	var extras []domain.Symbol
	for _, s := range km.Symbols() {
		if !l.Contains(s) {
			extras = append(extras, s)
		}
	}
	if len(extras) == 0 {
		return l
	}
	rows := make([][]domain.Symbol, 0, len(l.Rows)+1)
	rows = append(rows, l.Rows...)
	rows = append(rows, extras)
	return Layout{Rows: rows}
}
