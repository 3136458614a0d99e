package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyprhelp/hyprhelp/internal/domain"
)

func testKeyMap() *domain.KeyMap {
	km := domain.NewKeyMap("SUPER")
	km.Set(domain.Binding{Key: "Q", Title: "Workspace 1", Description: "Switch to workspace 1"})
	km.Set(domain.Binding{Key: "W", Title: "Workspace 2", Description: "Switch to workspace 2"})
	km.Set(domain.Binding{Key: domain.SymbolLeft, Title: "Focus Left", Description: "Move focus left"})
	return km
}

func TestMachine_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		events   func(m *Machine)
		expected State
		phase    Phase
	}{
		{
			name:     "starts idle",
			events:   func(m *Machine) {},
			expected: State{},
			phase:    PhaseIdle,
		},
		{
			name:     "enter from idle hovers",
			events:   func(m *Machine) { m.Enter("Q") },
			expected: State{Hovered: "Q"},
			phase:    PhaseHovering,
		},
		{
			name: "leave returns to idle",
			events: func(m *Machine) {
				m.Enter("Q")
				m.Leave("Q")
			},
			expected: State{},
			phase:    PhaseIdle,
		},
		{
			name: "leave of another key is ignored",
			events: func(m *Machine) {
				m.Enter("Q")
				m.Leave("W")
			},
			expected: State{Hovered: "Q"},
			phase:    PhaseHovering,
		},
		{
			name: "click while hovering locks",
			events: func(m *Machine) {
				m.Enter("Q")
				m.Click("Q")
			},
			expected: State{Hovered: "Q", Locked: "Q"},
			phase:    PhaseLockedHovering,
		},
		{
			name: "leaving the locked key keeps the lock",
			events: func(m *Machine) {
				m.Enter("Q")
				m.Click("Q")
				m.Leave("Q")
			},
			expected: State{Locked: "Q"},
			phase:    PhaseLocked,
		},
		{
			name: "hovering another key while locked",
			events: func(m *Machine) {
				m.Click("Q")
				m.Enter("W")
			},
			expected: State{Hovered: "W", Locked: "Q"},
			phase:    PhaseLocked,
		},
		{
			name: "clicking another key moves the lock",
			events: func(m *Machine) {
				m.Click("Q")
				m.Click("W")
			},
			expected: State{Locked: "W"},
			phase:    PhaseLocked,
		},
		{
			name: "clicking the locked key unlocks",
			events: func(m *Machine) {
				m.Enter("Q")
				m.Click("Q")
				m.Click("Q")
			},
			expected: State{},
			phase:    PhaseIdle,
		},
		{
			name: "background click clears lock",
			events: func(m *Machine) {
				m.Click("W")
				m.BackgroundClick()
			},
			expected: State{},
			phase:    PhaseIdle,
		},
		{
			name: "background click while hovering is a no-op",
			events: func(m *Machine) {
				m.Enter("Q")
				m.BackgroundClick()
			},
			expected: State{Hovered: "Q"},
			phase:    PhaseHovering,
		},
		{
			name:     "unbound keys are ignored",
			events:   func(m *Machine) { m.Enter("Z"); m.Click("Z") },
			expected: State{},
			phase:    PhaseIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(testKeyMap())
			tt.events(m)
			assert.Equal(t, tt.expected, m.State())
			assert.Equal(t, tt.phase, m.State().Phase())
		})
	}
}

func TestMachine_ClickTwiceRoundTrips(t *testing.T) {
	m := NewMachine(testKeyMap())

	assert.True(t, m.Click("Q"))
	assert.Equal(t, PhaseLocked, m.State().Phase())
	assert.True(t, m.Click("Q"))
	assert.Equal(t, State{}, m.State())
}

func TestMachine_ClickUnboundNotConsumed(t *testing.T) {
	m := NewMachine(testKeyMap())

	assert.False(t, m.Click("Z"))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "locked-hovering", PhaseLockedHovering.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
