// Package store persists the task collection as a single JSON snapshot on
// disk. The rest of the program treats the snapshot as opaque: it loads a
// task.Store at startup and writes the whole state back after every
// structural mutation.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"tableflip.dev/td/pkg/task"
)

// Record is one persisted task entry.
type Record struct {
	Title   string         `json:"title"`
	Created task.Timestamp `json:"time_created"`
}

// Snapshot is the full on-disk state.
type Snapshot struct {
	Tasks []Record `json:"tasks"`
}

// Persistence is the save/load contract the UI session depends on.
type Persistence interface {
	Load() (*task.Store, error)
	Save(*task.Store) error
}

// Read decodes the snapshot at path. A missing file surfaces as
// os.ErrNotExist via errors.Is; an unparseable file is a load error.
func Read(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: read %s: %w", path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("store: decode %s: %w", path, err)
	}
	return snap, nil
}

// Write encodes the snapshot and replaces the file at path atomically.
func Write(path string, snap Snapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: ensure directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("store: replace %s: %w", path, err)
	}
	return nil
}

// SnapshotOf captures the store's live tasks in insertion order.
func SnapshotOf(st *task.Store) Snapshot {
	tasks := st.Tasks()
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, Record{Title: t.Title, Created: t.Created})
	}
	return Snapshot{Tasks: records}
}

// File is the snapshot-backed Persistence implementation.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads the database. A missing file is not an error: a fresh empty
// store is created and written so the path exists from then on.
func (f *File) Load() (*task.Store, error) {
	snap, err := Read(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			st := task.NewStore()
			if werr := f.Save(st); werr != nil {
				return nil, werr
			}
			return st, nil
		}
		return nil, err
	}

	st := task.NewStore()
	for _, r := range snap.Tasks {
		st.Add(task.Task{Title: r.Title, Created: r.Created})
	}
	return st, nil
}

// Save writes the store's current state synchronously.
func (f *File) Save(st *task.Store) error {
	return Write(f.Path, SnapshotOf(st))
}
