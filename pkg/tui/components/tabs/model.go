// Package tabs owns an ordered set of labeled children and routes
// rendering and input to the active one.
package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/td/pkg/tui/theme"
	"tableflip.dev/td/pkg/tui/ui"
)

// Entry pairs a header label with the component it selects.
type Entry struct {
	Label     string
	Component ui.Component
}

// Model renders a one-row header plus the active child. The tab set is
// fixed at construction, so the active index is valid by construction.
type Model struct {
	entries []Entry
	active  int

	width  int
	height int
	theme  theme.Theme
}

func New(entries ...Entry) *Model {
	return &Model{
		entries: entries,
		theme:   theme.Default(),
	}
}

// Active returns the index of the currently selected tab.
func (m *Model) Active() int {
	return m.active
}

// Update delegates to the active child first and short-circuits when the
// child consumes the key. Left/right cycle through tabs with wraparound;
// 1..9 jump directly. Every other key falls through unhandled.
func (m *Model) Update(msg tea.KeyPressMsg, s *ui.Session) bool {
	if len(m.entries) == 0 {
		return false
	}
	if m.entries[m.active].Component.Update(msg, s) {
		return true
	}

	switch key := msg.String(); key {
	case "left":
		m.active = (m.active - 1 + len(m.entries)) % len(m.entries)
		return true
	case "right":
		m.active = (m.active + 1) % len(m.entries)
		return true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(m.entries) {
				m.active = idx
				return true
			}
		}
	}
	return false
}

// View draws the header row and the active child below it.
func (m *Model) View(s *ui.Session) string {
	if len(m.entries) == 0 {
		return ""
	}
	labels := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		style := m.theme.Tabs.Inactive
		if i == m.active {
			style = m.theme.Tabs.Active
		}
		labels = append(labels, style.Render(e.Label))
	}
	header := strings.Join(labels, "  ")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.entries[m.active].Component.View(s))
}

// SetSize reserves one row for the header and hands the rest to every
// child, so switching tabs never needs a resize.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for _, e := range m.entries {
		e.Component.SetSize(width, height-1)
	}
}

var _ ui.Component = (*Model)(nil)
