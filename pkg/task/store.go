// Package task holds the in-memory task collection and its record types.
//
// The Store is an arena of slots addressed by generation-checked handles: a
// handle stays valid across unrelated insertions and removals, and a slot
// freed by Remove is never readable through a stale handle. The flat task
// list only needs add/remove/iterate today, but the handle scheme leaves
// room for edges between tasks later without invalidating references.
package task

import "sort"

// Handle is a stable reference to a stored Task. The zero Handle is never
// issued and always resolves to nothing.
type Handle struct {
	index int
	gen   uint64
}

type slot struct {
	task Task
	gen  uint64
	seq  uint64
	live bool
}

// Store is an unordered collection of Task records with stable handles.
// It is owned by a single goroutine; no locking.
type Store struct {
	slots []slot
	free  []int
	seq   uint64
}

func NewStore() *Store {
	return &Store{}
}

// Add inserts a task and returns its handle.
func (s *Store) Add(t Task) Handle {
	s.seq++
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.gen++
		sl.task = t
		sl.seq = s.seq
		sl.live = true
		return Handle{index: idx, gen: sl.gen}
	}
	s.slots = append(s.slots, slot{task: t, gen: 1, seq: s.seq, live: true})
	return Handle{index: len(s.slots) - 1, gen: 1}
}

// Remove deletes the task behind h. It reports whether h referred to a live
// task; all other handles remain valid.
func (s *Store) Remove(h Handle) bool {
	sl := s.lookup(h)
	if sl == nil {
		return false
	}
	sl.live = false
	sl.task = Task{}
	s.free = append(s.free, h.index)
	return true
}

// Get resolves h to its task.
func (s *Store) Get(h Handle) (Task, bool) {
	sl := s.lookup(h)
	if sl == nil {
		return Task{}, false
	}
	return sl.task, true
}

// Len reports the number of live tasks.
func (s *Store) Len() int {
	count := 0
	for i := range s.slots {
		if s.slots[i].live {
			count++
		}
	}
	return count
}

// Handles returns a snapshot of all live handles in insertion order.
// Insertion order is the documented tie-break for views that sort by
// creation time.
func (s *Store) Handles() []Handle {
	handles := make([]Handle, 0, len(s.slots))
	for i := range s.slots {
		if s.slots[i].live {
			handles = append(handles, Handle{index: i, gen: s.slots[i].gen})
		}
	}
	sort.SliceStable(handles, func(a, b int) bool {
		return s.slots[handles[a].index].seq < s.slots[handles[b].index].seq
	})
	return handles
}

// Tasks returns a snapshot of all live tasks in insertion order.
func (s *Store) Tasks() []Task {
	handles := s.Handles()
	tasks := make([]Task, 0, len(handles))
	for _, h := range handles {
		tasks = append(tasks, s.slots[h.index].task)
	}
	return tasks
}

func (s *Store) lookup(h Handle) *slot {
	if h.index < 0 || h.index >= len(s.slots) {
		return nil
	}
	sl := &s.slots[h.index]
	if !sl.live || sl.gen != h.gen {
		return nil
	}
	return sl
}
