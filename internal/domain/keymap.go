package domain

// Binding is the help text attached to a key symbol
type Binding struct {
	Description string
	Key         Symbol
	Title       string
}

// KeyMap is an insertion-ordered set of bindings plus the modifier they are
// activated with. Setting an existing symbol replaces its binding but keeps
// the original position.
type KeyMap struct {
	Modifier string

	bindings map[Symbol]Binding
	order    []Symbol
}

// NewKeyMap creates an empty KeyMap for the given modifier
func NewKeyMap(modifier string) *KeyMap {
	return &KeyMap{
		Modifier: modifier,
		bindings: make(map[Symbol]Binding),
	}
}

// Set records a binding, overwriting any earlier binding for the same symbol
func (km *KeyMap) Set(b Binding) {
	if km.bindings == nil {
		km.bindings = make(map[Symbol]Binding)
	}
	if _, exists := km.bindings[b.Key]; !exists {
		km.order = append(km.order, b.Key)
	}
	km.bindings[b.Key] = b
}

// Get returns the binding for a symbol
func (km *KeyMap) Get(s Symbol) (Binding, bool) {
	if km == nil {
		return Binding{}, false
	}
	b, ok := km.bindings[s]
	return b, ok
}

// Has reports whether the symbol is bound
func (km *KeyMap) Has(s Symbol) bool {
	_, ok := km.Get(s)
	return ok
}

// Len returns the number of bindings
func (km *KeyMap) Len() int {
	if km == nil {
		return 0
	}
	return len(km.order)
}

// Symbols returns the bound symbols in insertion order
func (km *KeyMap) Symbols() []Symbol {
	if km == nil {
		return nil
	}
	out := make([]Symbol, len(km.order))
	copy(out, km.order)
	return out
}

// Bindings returns all bindings in insertion order
func (km *KeyMap) Bindings() []Binding {
	if km == nil {
		return nil
	}
	out := make([]Binding, 0, len(km.order))
	for _, s := range km.order {
		out = append(out, km.bindings[s])
	}
	return out
}

// WithModifier returns a copy of the key map carrying a different modifier
func (km *KeyMap) WithModifier(modifier string) *KeyMap {
	out := NewKeyMap(modifier)
	for _, b := range km.Bindings() {
		out.Set(b)
	}
	return out
}
