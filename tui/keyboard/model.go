// Package keyboard is the interactive presentation layer: it renders the
// active layout's labels and turns key presses into strokes.
package keyboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/stroke/dispatch"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/tui/theme"
)

// ThemeMsg swaps the theme while the program runs.
type ThemeMsg struct {
	Theme *theme.Theme
}

// ConfigErrorMsg reports a config reload that failed.
type ConfigErrorMsg struct {
	Err error
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the initial theme.
func WithTheme(t *theme.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithHelp shows or hides the help footer.
func WithHelp(show bool) Option {
	return func(m *Model) { m.showHelp = show }
}

// WithKeyMap replaces the control bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) { m.keys = km }
}

// Model is the bubbletea model of the keyboard. The dispatcher must use the
// model's Buffer as its host; the model is the dispatcher's only caller.
type Model struct {
	dispatcher *dispatch.Dispatcher
	buffer     *Buffer
	keys       KeyMap
	help       help.Model
	theme      *theme.Theme
	showHelp   bool

	pending    layout.Zone
	hasPending bool
	status     string
	statusErr  bool
	width      int
}

// New creates the model.
func New(d *dispatch.Dispatcher, buf *Buffer, opts ...Option) Model {
	m := Model{
		dispatcher: d,
		buffer:     buf,
		keys:       DefaultKeyMap,
		help:       help.New(),
		theme:      theme.DefaultTheme,
		showHelp:   true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init is the first command that will be executed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ThemeMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.setStatus(fmt.Sprintf("theme: %s", msg.Theme.Name), false)
		}
		return m, nil

	case ConfigErrorMsg:
		m.setStatus(fmt.Sprintf("config: %v", msg.Err), true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.hasPending = false
		m.setStatus("", false)
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.buffer.Clear()
		return m, nil
	case key.Matches(msg, m.keys.NextLayout):
		m.switchLayout(layout.TargetNext)
		return m, nil
	case key.Matches(msg, m.keys.PrevLayout):
		m.switchLayout(layout.TargetPrev)
		return m, nil
	}

	z, ok := ZoneForKey(msg.String())
	if !ok {
		return m, nil
	}

	if !m.hasPending {
		if !z.Inner() {
			m.setStatus("a stroke starts inside the key", true)
			return m, nil
		}
		m.pending, m.hasPending = z, true
		m.setStatus(fmt.Sprintf("%s → ?", z), false)
		return m, nil
	}

	start := m.pending
	m.hasPending = false
	res, err := m.dispatcher.HandleStroke(start, z)
	switch {
	case err != nil:
		m.setStatus(err.Error(), true)
	case !res.Found:
		m.setStatus(fmt.Sprintf("%s → %s: no stroke", start, z), false)
	default:
		m.setStatus(fmt.Sprintf("%s → %s: %s", start, z, res.Action), false)
	}
	return m, nil
}

func (m *Model) switchLayout(target string) {
	m.hasPending = false
	if err := m.dispatcher.SwitchLayout(target); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("", false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// Pending returns the start zone of a stroke in progress.
func (m Model) Pending() (layout.Zone, bool) {
	return m.pending, m.hasPending
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Text returns the typed text.
func (m Model) Text() string {
	return m.buffer.String()
}

// Theme returns the active theme.
func (m Model) Theme() *theme.Theme {
	return m.theme
}
