// Package interaction holds the hover/lock state machine behind the overlay
// and the pure function that turns its state into per-key display values.
package interaction

import "github.com/hyprhelp/hyprhelp/internal/domain"

// Phase names the observable state of the machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHovering
	PhaseLocked
	PhaseLockedHovering
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHovering:
		return "hovering"
	case PhaseLocked:
		return "locked"
	case PhaseLockedHovering:
		return "locked-hovering"
	}
	return "unknown"
}

// State is the pointer interaction state. The zero value is Idle.
type State struct {
	Hovered domain.Symbol
	Locked  domain.Symbol
}

// Phase classifies the state. Hovering a key other than the locked one still
// reports PhaseLocked since it has no visible effect.
func (s State) Phase() Phase {
	switch {
	case s.Locked.IsZero() && s.Hovered.IsZero():
		return PhaseIdle
	case s.Locked.IsZero():
		return PhaseHovering
	case s.Hovered == s.Locked:
		return PhaseLockedHovering
	default:
		return PhaseLocked
	}
}

// Machine applies pointer events to a State for one immutable KeyMap.
// Events for symbols missing from the KeyMap are ignored.
type Machine struct {
	keys  *domain.KeyMap
	state State
}

// NewMachine creates an idle machine over km
func NewMachine(km *domain.KeyMap) *Machine {
	return &Machine{keys: km}
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// KeyMap returns the key map the machine reads from
func (m *Machine) KeyMap() *domain.KeyMap {
	return m.keys
}

// Enter records the pointer entering key k
func (m *Machine) Enter(k domain.Symbol) {
	if !m.keys.Has(k) {
		return
	}
	m.state.Hovered = k
}

// Leave records the pointer leaving key k
func (m *Machine) Leave(k domain.Symbol) {
	if m.state.Hovered == k {
		m.state.Hovered = ""
	}
}

// Click toggles the lock on k, or moves the lock to k from another key.
// It reports whether the click was consumed; clicks on unbound keys are not.
func (m *Machine) Click(k domain.Symbol) bool {
	if !m.keys.Has(k) {
		return false
	}
	if m.state.Locked == k {
		m.state = State{}
		return true
	}
	m.state.Locked = k
	return true
}

// BackgroundClick clears any lock
func (m *Machine) BackgroundClick() {
	if m.state.Locked.IsZero() {
		return
	}
	m.state = State{}
}
