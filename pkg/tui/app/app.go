// Package app hosts the Bubble Tea program for the td interface.
//
// The program loop is strictly synchronous: one key event in, one frame
// out. Rendering and input handling alternate turn by turn, and the only
// blocking point is the wait for the next key, so a frame always reflects
// the state exactly as it stood after the most recently processed event.
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/td/pkg/tui/components/tabs"
	"tableflip.dev/td/pkg/tui/components/tasklist"
	"tableflip.dev/td/pkg/tui/theme"
	"tableflip.dev/td/pkg/tui/ui"
)

const helpLine = "c new task • d delete • ↑/↓ select • ←/→ tabs • s save • q quit"

// Root is the single top-level component of the session. It is a thin
// pass-through to the tab container so the program loop never needs to
// know the tree shape.
type Root struct {
	tabs *tabs.Model
}

func NewRoot() *Root {
	return &Root{
		tabs: tabs.New(
			tabs.Entry{Label: "Tasks", Component: tasklist.New(false)},
			tabs.Entry{Label: "Tasks (rev)", Component: tasklist.New(true)},
		),
	}
}

func (r *Root) Update(msg tea.KeyPressMsg, s *ui.Session) bool {
	return r.tabs.Update(msg, s)
}

func (r *Root) View(s *ui.Session) string {
	return r.tabs.View(s)
}

func (r *Root) SetSize(width, height int) {
	r.tabs.SetSize(width, height)
}

var _ ui.Component = (*Root)(nil)

// Model drives the render/read/update cycle and owns the fallback key
// bindings for events the component tree does not consume.
type Model struct {
	session *ui.Session
	root    *Root
	theme   theme.Theme

	width  int
	height int
}

func New(session *ui.Session) *Model {
	return &Model{
		session: session,
		root:    NewRoot(),
		theme:   theme.Default(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// one footer row stays with the program
		m.root.SetSize(m.width, m.height-1)
	case tea.KeyPressMsg:
		m.session.ClearStatus()
		if m.root.Update(msg, m.session) {
			return m, nil
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			// explicit checkpoint on top of the per-mutation writes
			if err := m.session.Persist(); err != nil {
				m.session.SetStatus("ERR: save: " + err.Error())
			} else {
				m.session.SetStatus("saved " + m.session.Path)
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	return strings.Join([]string{m.root.View(m.session), m.footer()}, "\n")
}

func (m *Model) footer() string {
	status := m.session.Status()
	switch {
	case strings.HasPrefix(status, "ERR:"):
		return m.theme.Footer.Error.Render(status)
	case status != "":
		return m.theme.Footer.Status.Render(status)
	default:
		return m.theme.Footer.Help.Render(helpLine)
	}
}

// Run launches the interactive program on the alternate screen. Raw mode
// and screen restoration are owned by the runtime.
func Run(session *ui.Session) error {
	p := tea.NewProgram(New(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
