package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/td/pkg/tui/ui"
)

// probe records the dispatch it receives and answers with a fixed
// handled result.
type probe struct {
	handled bool
	keys    []string
	width   int
	height  int
}

func (p *probe) Update(msg tea.KeyPressMsg, _ *ui.Session) bool {
	p.keys = append(p.keys, msg.String())
	return p.handled
}

func (p *probe) View(_ *ui.Session) string { return "probe" }

func (p *probe) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestActiveChildSeesKeyFirst(t *testing.T) {
	first := &probe{handled: true}
	second := &probe{}
	m := New(Entry{Label: "One", Component: first}, Entry{Label: "Two", Component: second})

	right := tea.KeyPressMsg{Code: tea.KeyRight}
	if !m.Update(right, nil) {
		t.Fatalf("handled child not reported as handled")
	}
	if len(first.keys) != 1 || first.keys[0] != "right" {
		t.Fatalf("active child not consulted first: %v", first.keys)
	}
	if len(second.keys) != 0 {
		t.Fatalf("inactive child received the key: %v", second.keys)
	}
	// the child consumed it, so the container must not also switch tabs
	if m.Active() != 0 {
		t.Fatalf("container acted on a key its child consumed")
	}
}

func TestSwitchingWrapsAround(t *testing.T) {
	m := New(
		Entry{Label: "One", Component: &probe{}},
		Entry{Label: "Two", Component: &probe{}},
		Entry{Label: "Three", Component: &probe{}},
	)

	if !m.Update(tea.KeyPressMsg{Code: tea.KeyLeft}, nil) {
		t.Fatalf("left not handled")
	}
	if m.Active() != 2 {
		t.Fatalf("left from first tab did not wrap, active %d", m.Active())
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyRight}, nil)
	if m.Active() != 0 {
		t.Fatalf("right from last tab did not wrap, active %d", m.Active())
	}
}

func TestNumberKeysJumpDirectly(t *testing.T) {
	m := New(
		Entry{Label: "One", Component: &probe{}},
		Entry{Label: "Two", Component: &probe{}},
	)
	if !m.Update(tea.KeyPressMsg{Text: "2", Code: '2'}, nil) {
		t.Fatalf("2 not handled")
	}
	if m.Active() != 1 {
		t.Fatalf("2 selected tab %d", m.Active())
	}
	if m.Update(tea.KeyPressMsg{Text: "9", Code: '9'}, nil) {
		t.Fatalf("out-of-range number key consumed")
	}
}

func TestOtherKeysFallThrough(t *testing.T) {
	m := New(Entry{Label: "One", Component: &probe{}})
	if m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'}, nil) {
		t.Fatalf("q consumed by the container")
	}
}

func TestViewShowsHeaderAndActiveChildOnly(t *testing.T) {
	m := New(
		Entry{Label: "Tasks", Component: &probe{}},
		Entry{Label: "Tasks (rev)", Component: &probe{}},
	)
	view := stripANSIString(m.View(nil))
	lines := strings.Split(view, "\n")
	if len(lines) < 2 {
		t.Fatalf("view missing header or body:\n%s", view)
	}
	if !strings.Contains(lines[0], "Tasks") || !strings.Contains(lines[0], "Tasks (rev)") {
		t.Fatalf("header row missing labels: %q", lines[0])
	}
	if !strings.Contains(view, "probe") {
		t.Fatalf("active child not rendered:\n%s", view)
	}
}

func TestSetSizeReservesHeaderRow(t *testing.T) {
	first := &probe{}
	second := &probe{}
	m := New(Entry{Label: "One", Component: first}, Entry{Label: "Two", Component: second})
	m.SetSize(80, 24)
	for _, p := range []*probe{first, second} {
		if p.width != 80 || p.height != 23 {
			t.Fatalf("child sized %dx%d, want 80x23", p.width, p.height)
		}
	}
}
