package ui

import (
	"tableflip.dev/td/pkg/store"
	"tableflip.dev/td/pkg/task"
)

// Session is the application state every component call receives: the task
// store, the database path it came from, and the persistence collaborator
// that writes it back. Components never keep their own copy and there are
// no ambient globals.
type Session struct {
	Store *task.Store
	Path  string
	DB    store.Persistence

	status string
}

// Persist writes the store's full state synchronously. Callers surface a
// failure through the status line instead of aborting the session.
func (s *Session) Persist() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Save(s.Store)
}

// SetStatus records a transient message for the footer. It lives until the
// next key is processed.
func (s *Session) SetStatus(msg string) {
	s.status = msg
}

func (s *Session) Status() string {
	return s.status
}

func (s *Session) ClearStatus() {
	s.status = ""
}
