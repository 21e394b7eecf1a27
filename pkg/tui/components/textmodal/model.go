// Package textmodal is a self-contained text prompt overlay. While open it
// captures every key; the owner decides what to do with the entered text.
package textmodal

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/td/pkg/tui/theme"
	"tableflip.dev/td/pkg/tui/ui"
)

const minInputWidth = 20

// Model holds the open/closed state and the editable buffer.
type Model struct {
	title string
	open  bool
	input textinput.Model
	width int
	theme theme.Theme
}

// New builds a closed modal with the given prompt title.
func New(title string) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.SetWidth(minInputWidth)
	return &Model{
		title: title,
		input: ti,
		theme: theme.Default(),
	}
}

// IsOpen reports whether the modal currently captures input.
func (m *Model) IsOpen() bool {
	return m.open
}

// Open transitions to the open state with a cleared buffer.
func (m *Model) Open() {
	m.open = true
	m.input.SetValue("")
	m.input.Focus()
}

// Close transitions to the closed state and returns the buffer content.
// Clearing the buffer and dropping the open flag happen together: there is
// no state where the modal is closed but still holds stale text. The
// second return is false when the modal was not open.
func (m *Model) Close() (string, bool) {
	if !m.open {
		return "", false
	}
	text := m.input.Value()
	m.open = false
	m.input.Blur()
	m.input.SetValue("")
	return text, true
}

// Update consumes every key while open. Escape discards the buffer and
// closes; Enter is reported handled but the transition is left to the
// owner via Close; everything else feeds the text buffer. A closed modal
// handles nothing.
func (m *Model) Update(msg tea.KeyPressMsg, _ *ui.Session) bool {
	if !m.open {
		return false
	}
	switch msg.String() {
	case "esc":
		m.open = false
		m.input.Blur()
		m.input.SetValue("")
	case "enter":
		// the owner observes Enter and calls Close
	default:
		m.input, _ = m.input.Update(msg)
	}
	return true
}

// View renders the bordered prompt box, or nothing while closed.
func (m *Model) View(_ *ui.Session) string {
	if !m.open {
		return ""
	}
	title := m.theme.Modal.Title.Render(m.title)
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.input.View())
	return m.theme.Modal.Frame.Render(body)
}

// SetSize adapts the input field to the host area.
func (m *Model) SetSize(width, _ int) {
	m.width = width
	w := width / 2
	if w < minInputWidth {
		w = minInputWidth
	}
	m.input.SetWidth(w)
}

var _ ui.Component = (*Model)(nil)
