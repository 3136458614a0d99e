package interaction

import "github.com/hyprhelp/hyprhelp/internal/domain"

// EventKind identifies a pointer event
type EventKind int

const (
	EventEnter EventKind = iota
	EventLeave
	EventClick
)

// Event is a pointer event against a key. An empty Key on a click means the
// pointer was not over any interactive key.
type Event struct {
	Key  domain.Symbol
	Kind EventKind
}

// handlers are the callbacks registered for one bound key
type handlers struct {
	click func() bool
	enter func()
	leave func()
}

// Router dispatches events to per-key handlers. The table is built once from
// the machine's KeyMap; keys outside it have no handlers.
type Router struct {
	machine *Machine
	table   map[domain.Symbol]handlers
}

// NewRouter builds the routing table for every bound key of m
func NewRouter(m *Machine) *Router {
	symbols := m.KeyMap().Symbols()
	table := make(map[domain.Symbol]handlers, len(symbols))
	for _, sym := range symbols {
		table[sym] = handlers{
			click: func() bool { return m.Click(sym) },
			enter: func() { m.Enter(sym) },
			leave: func() { m.Leave(sym) },
		}
	}
	return &Router{machine: m, table: table}
}

// Interactive reports whether k has handlers
func (r *Router) Interactive(k domain.Symbol) bool {
	_, ok := r.table[k]
	return ok
}

// Dispatch routes ev. Clicks that no key consumes become background clicks.
func (r *Router) Dispatch(ev Event) {
	h, ok := r.table[ev.Key]
	switch ev.Kind {
	case EventEnter:
		if ok {
			h.enter()
		}
	case EventLeave:
		if ok {
			h.leave()
		}
	case EventClick:
		if ok && h.click() {
			return
		}
		r.machine.BackgroundClick()
	}
}

// State returns the machine state
func (r *Router) State() State {
	return r.machine.State()
}
