package textmodal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
)

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

func typeString(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r}, nil)
	}
}

func TestClosedModalHandlesNothing(t *testing.T) {
	m := New("Enter new task")
	for _, msg := range []tea.KeyPressMsg{
		{Text: "x", Code: 'x'},
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		if m.Update(msg, nil) {
			t.Fatalf("closed modal consumed %q", msg.String())
		}
	}
	if view := m.View(nil); view != "" {
		t.Fatalf("closed modal rendered %q", view)
	}
}

func TestOpenClearsBuffer(t *testing.T) {
	m := New("Enter new task")
	m.Open()
	typeString(m, "stale")
	if _, ok := m.Close(); !ok {
		t.Fatalf("close on open modal reported not open")
	}

	m.Open()
	text, ok := m.Close()
	if !ok {
		t.Fatalf("close on reopened modal reported not open")
	}
	if text != "" {
		t.Fatalf("buffer not cleared on open: %q", text)
	}
}

func TestTypingAndBackspace(t *testing.T) {
	m := New("Enter new task")
	m.Open()
	typeString(m, "ab")
	if !m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace}, nil) {
		t.Fatalf("backspace not handled while open")
	}
	text, _ := m.Close()
	if text != "a" {
		t.Fatalf("buffer %q after typing ab + backspace", text)
	}
}

func TestEscapeClosesWithoutText(t *testing.T) {
	m := New("Enter new task")
	m.Open()
	typeString(m, "discard me")
	if !m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}, nil) {
		t.Fatalf("escape not handled while open")
	}
	if m.IsOpen() {
		t.Fatalf("modal still open after escape")
	}
	if text, ok := m.Close(); ok || text != "" {
		t.Fatalf("escape leaked buffer content: %q %v", text, ok)
	}
}

func TestEnterIsHandledButLeavesTransitionToOwner(t *testing.T) {
	m := New("Enter new task")
	m.Open()
	typeString(m, "keep me")
	if !m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}, nil) {
		t.Fatalf("enter not handled while open")
	}
	if !m.IsOpen() {
		t.Fatalf("enter closed the modal on its own")
	}
	text, ok := m.Close()
	if !ok || text != "keep me" {
		t.Fatalf("close returned %q %v", text, ok)
	}
	if m.IsOpen() {
		t.Fatalf("modal open after close")
	}
}

func TestOpenModalSwallowsEveryKey(t *testing.T) {
	m := New("Enter new task")
	m.Open()
	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyUp},
		{Code: tea.KeyDown},
		{Text: "d", Code: 'd'},
		{Code: tea.KeyTab},
	} {
		if !m.Update(msg, nil) {
			t.Fatalf("open modal let %q through", msg.String())
		}
	}
}

func TestViewShowsTitleAndBuffer(t *testing.T) {
	m := New("Enter new task")
	m.Open()
	typeString(m, "Buy milk")

	view := stripANSIString(m.View(nil))
	if !strings.Contains(view, "Enter new task") {
		t.Fatalf("view missing prompt title:\n%s", view)
	}
	if !strings.Contains(view, "Buy milk") {
		t.Fatalf("view missing buffer content:\n%s", view)
	}
}
