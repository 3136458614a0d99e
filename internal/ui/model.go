package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/interaction"
	"github.com/hyprhelp/hyprhelp/internal/keymap"
	"github.com/hyprhelp/hyprhelp/internal/logging"
	"github.com/hyprhelp/hyprhelp/internal/theme"
)

const (
	defaultWidth = 80
	marginLeft   = 2
	infoDescRows = 2
)

// Options configures a Model. KeyMap is required; zero Layout and Palette
// select the defaults.
type Options struct {
	KeyMap  *domain.KeyMap
	Layout  interaction.Layout
	Monitor string
	Palette *theme.Palette
	Version string
}

// Model is the bubbletea model for the overlay. It translates terminal mouse
// and key events into interaction events and redraws from the machine state.
type Model struct {
	appKeys  appKeys
	fallback bool
	height   int
	help     help.Model
	keyboard keyboard
	keys     *domain.KeyMap
	machine  *interaction.Machine
	monitor  string
	palette  theme.Palette
	pointer  domain.Symbol // Interactive key currently under the mouse
	router   *interaction.Router
	styles   theme.Styles
	version  string
	width    int
}

// NewModel creates the overlay model
func NewModel(opts Options) *Model {
	layout := opts.Layout
	if len(layout.Rows) == 0 {
		layout = interaction.DefaultLayout()
	}
	layout = layout.WithExtras(opts.KeyMap)

	palette := theme.DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	styles := theme.NewStyles(palette)

	machine := interaction.NewMachine(opts.KeyMap)

	h := help.New()
	h.Styles.ShortKey = styles.Help.Bold(true)
	h.Styles.ShortDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help

	return &Model{
		appKeys:  newAppKeys(),
		fallback: keymap.IsFallback(opts.KeyMap),
		help:     h,
		keyboard: newKeyboard(layout),
		keys:     opts.KeyMap,
		machine:  machine,
		monitor:  opts.Monitor,
		palette:  palette,
		router:   interaction.NewRouter(machine),
		styles:   styles,
		version:  opts.Version,
		width:    defaultWidth,
	}
}

// State returns the interaction state
func (m *Model) State() interaction.State {
	return m.machine.State()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - marginLeft
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.appKeys.Quit):
		logging.Logger.Info("Cancel requested, quitting")
		return m, tea.Quit
	case key.Matches(msg, m.appKeys.Unlock):
		m.router.Dispatch(interaction.Event{Kind: interaction.EventClick})
		return m, nil
	}

	// Typing a bound key behaves like clicking it
	sym := domain.NormalizeSymbol(msg.String())
	if m.router.Interactive(sym) {
		m.router.Dispatch(interaction.Event{Kind: interaction.EventClick, Key: sym})
		logging.Logger.Debug("Key typed", "key", sym, "phase", m.machine.State().Phase().String())
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	sym := m.interactiveKeyAt(msg.X, msg.Y)
	m.movePointer(sym)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.router.Dispatch(interaction.Event{Kind: interaction.EventClick, Key: sym})
		logging.Logger.Debug("Click", "key", sym, "phase", m.machine.State().Phase().String())
	}
}

// movePointer emits leave/enter events when the pointer crosses key boundaries
func (m *Model) movePointer(sym domain.Symbol) {
	if sym == m.pointer {
		return
	}
	if !m.pointer.IsZero() {
		m.router.Dispatch(interaction.Event{Kind: interaction.EventLeave, Key: m.pointer})
	}
	m.pointer = sym
	if !sym.IsZero() {
		m.router.Dispatch(interaction.Event{Kind: interaction.EventEnter, Key: sym})
	}
}

// interactiveKeyAt maps screen coordinates to a bound key, or "" for background
func (m *Model) interactiveKeyAt(x, y int) domain.Symbol {
	originX, originY := m.gridOrigin()
	sym, ok := m.keyboard.keyAt(x-originX, y-originY)
	if !ok || !m.router.Interactive(sym) {
		return ""
	}
	return sym
}

// gridOrigin returns the screen position of the top-left key cell
func (m *Model) gridOrigin() (int, int) {
	return marginLeft, lipgloss.Height(m.renderTop(interaction.Info{}))
}

func (m *Model) contentWidth() int {
	w := m.width - marginLeft
	if w < minCellWidth {
		return minCellWidth
	}
	return w
}

// renderTop draws everything above the key grid. Its height does not depend
// on the info text so the grid never moves.
func (m *Model) renderTop(info interaction.Info) string {
	w := m.contentWidth()
	title := m.styles.InfoTitle.MaxWidth(w).Render(info.Title)
	desc := m.styles.InfoDesc.
		Width(w).
		Height(infoDescRows).
		MaxHeight(infoDescRows).
		Render(info.Description)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.styles),
		"",
		title,
		desc,
		"",
	)
}

func (m *Model) View() string {
	view := interaction.Render(m.keys, m.machine.State(), m.keyboard.layout, m.palette)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTop(view.Info),
		m.keyboard.render(view, m.styles),
		"",
		renderFooter(m.styles, m.contentWidth(), m.monitor, m.version, m.fallback),
		m.help.View(m.appKeys),
	)

	return lipgloss.NewStyle().PaddingLeft(marginLeft).Render(content)
}
