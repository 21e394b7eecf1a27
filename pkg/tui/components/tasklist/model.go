// Package tasklist renders the task collection as a selectable list and
// owns the create-task prompt.
package tasklist

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/td/pkg/task"
	"tableflip.dev/td/pkg/tui/components/textmodal"
	"tableflip.dev/td/pkg/tui/theme"
	"tableflip.dev/td/pkg/tui/ui"
	"tableflip.dev/td/pkg/tui/ui/overlay"
)

// Model shows tasks sorted by creation time, oldest first, or newest first
// when reversed. The selection index always tracks the displayed order.
type Model struct {
	index   int
	modal   *textmodal.Model
	reverse bool

	width  int
	height int
	theme  theme.Theme
}

func New(reverse bool) *Model {
	return &Model{
		modal:   textmodal.New("Enter new task"),
		reverse: reverse,
		theme:   theme.Default(),
	}
}

// Selected returns the handle at the current selection in display order.
// The second return is false when the store is empty: the index is
// meaningless then and must not be dereferenced.
func (m *Model) Selected(s *ui.Session) (task.Handle, bool) {
	handles := m.sortedHandles(s)
	if len(handles) == 0 {
		return task.Handle{}, false
	}
	idx := clamp(m.index, len(handles))
	return handles[idx], true
}

// Update applies the dispatch order the component contract requires: the
// modal gets first refusal, then the selection is re-clamped, and only
// then are the list's own bindings interpreted.
func (m *Model) Update(msg tea.KeyPressMsg, s *ui.Session) bool {
	wasOpen := m.modal.IsOpen()
	if m.modal.Update(msg, s) {
		if wasOpen && msg.String() == "enter" {
			if text, ok := m.modal.Close(); ok {
				s.Store.Add(task.New(text))
				m.persist(s)
			}
		}
		m.clampIndex(s)
		return true
	}

	m.clampIndex(s)

	if m.modal.IsOpen() {
		// unreachable while the modal consumes every key; kept so an open
		// modal can never leak keys into the bindings below
		return true
	}

	switch msg.String() {
	case "c":
		m.modal.Open()
		return true
	case "d":
		handles := m.sortedHandles(s)
		if len(handles) == 0 {
			return false
		}
		s.Store.Remove(handles[clamp(m.index, len(handles))])
		m.persist(s)
		m.clampIndex(s)
		return true
	case "up":
		if m.index > 0 {
			m.index--
		}
		return true
	case "down":
		if m.index < s.Store.Len()-1 {
			m.index++
		}
		return true
	}
	return false
}

// View draws the bordered list with the selected row highlighted, then the
// modal on top when it is open.
func (m *Model) View(s *ui.Session) string {
	handles := m.sortedHandles(s)

	title := "Task List"
	if m.reverse {
		title = "Task List (reversed)"
	}

	innerWidth := m.width - 2
	if innerWidth < 1 {
		innerWidth = widestTitle(s, handles, len(title))
	}

	lines := []string{m.theme.List.Title.Render(pad(title, innerWidth))}
	selected := clamp(m.index, len(handles))
	for i, h := range handles {
		t, ok := s.Store.Get(h)
		if !ok {
			continue
		}
		row := pad(truncate.StringWithTail(t.Title, uint(innerWidth), "…"), innerWidth)
		if i == selected && len(handles) > 0 {
			row = m.theme.List.Selected.Render(row)
		} else {
			row = m.theme.List.Item.Render(row)
		}
		lines = append(lines, row)
	}

	if innerHeight := m.height - 2; innerHeight > 0 {
		lines = window(lines, innerHeight, selected+1)
		for len(lines) < innerHeight {
			lines = append(lines, strings.Repeat(" ", innerWidth))
		}
	}

	base := m.theme.List.Frame.Render(strings.Join(lines, "\n"))
	if !m.modal.IsOpen() {
		return base
	}
	return overlay.Center(base, m.width, m.height, m.modal.View(s))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.modal.SetSize(width, height)
}

// sortedHandles snapshots the store in display order: ascending by
// creation time with insertion order breaking ties, reversed wholesale for
// the reversed variant.
func (m *Model) sortedHandles(s *ui.Session) []task.Handle {
	handles := s.Store.Handles()
	sort.SliceStable(handles, func(a, b int) bool {
		ta, _ := s.Store.Get(handles[a])
		tb, _ := s.Store.Get(handles[b])
		return ta.Created.Before(tb.Created.Time)
	})
	if m.reverse {
		for i, j := 0, len(handles)-1; i < j; i, j = i+1, j-1 {
			handles[i], handles[j] = handles[j], handles[i]
		}
	}
	return handles
}

// persist writes the store immediately after a structural mutation. A
// failure surfaces on the status line instead of tearing the session down.
func (m *Model) persist(s *ui.Session) {
	if err := s.Persist(); err != nil {
		s.SetStatus("ERR: save: " + err.Error())
	}
}

func (m *Model) clampIndex(s *ui.Session) {
	if n := s.Store.Len(); n > 0 {
		m.index = clamp(m.index, n)
	}
}

func clamp(idx, length int) int {
	if idx < 0 || length <= 0 {
		return 0
	}
	if idx > length-1 {
		return length - 1
	}
	return idx
}

// window trims lines to height rows while keeping the row at keep visible.
func window(lines []string, height, keep int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if keep >= height {
		start = keep - height + 1
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func widestTitle(s *ui.Session, handles []task.Handle, floor int) int {
	width := floor
	for _, h := range handles {
		if t, ok := s.Store.Get(h); ok {
			if w := lipgloss.Width(t.Title); w > width {
				width = w
			}
		}
	}
	return width
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

var _ ui.Component = (*Model)(nil)
