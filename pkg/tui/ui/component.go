// Package ui defines the contract shared by every node of the component
// tree and the session context threaded through it.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is one node of the interface tree.
//
// View must not mutate the session: it draws the component (and its
// children) from the state as it stands. Update may mutate the session and
// reports whether the key was consumed by this component or a descendant
// it delegated to; a handled key must not be reinterpreted by any ancestor
// or by the program's fallback bindings.
//
// Composites delegate to their children before applying their own key
// bindings and short-circuit as soon as a child reports handled. That
// ordering is what keeps a parent shortcut from shadowing a modal or a
// focused child that is capturing text.
type Component interface {
	Update(msg tea.KeyPressMsg, s *Session) bool
	View(s *Session) string
	SetSize(width, height int)
}
