package task

import "time"

// New builds a Task stamped with the current wall-clock time. Created is
// set here exactly once and never mutated afterwards.
func New(title string) Task {
	return Task{
		Title:   title,
		Created: Timestamp{Time: time.Now()},
	}
}

type Task struct {
	Title   string    `json:"title"`
	Created Timestamp `json:"time_created"`
}
