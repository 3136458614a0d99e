package domain

import "strings"

// Symbol is the normalized key identity used as a KeyMap key
type Symbol string

// Named symbols produced by key aliasing
const (
	SymbolDown  Symbol = "↓"
	SymbolEnter Symbol = "ENTER"
	SymbolLeft  Symbol = "←"
	SymbolRight Symbol = "→"
	SymbolUp    Symbol = "↑"
)

// keyAliases maps uppercased raw key names to their display symbol
var keyAliases = map[string]Symbol{
	"DOWN":   SymbolDown,
	"LEFT":   SymbolLeft,
	"RETURN": SymbolEnter,
	"RIGHT":  SymbolRight,
	"UP":     SymbolUp,
}

// NormalizeSymbol upper-cases a raw key name and applies the arrow/enter aliases.
// Keys without an alias pass through uppercased.
func NormalizeSymbol(raw string) Symbol {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if alias, ok := keyAliases[upper]; ok {
		return alias
	}
	return Symbol(upper)
}

// String returns the symbol text
func (s Symbol) String() string {
	return string(s)
}

// IsZero reports whether the symbol is unset
func (s Symbol) IsZero() bool {
	return s == ""
}
