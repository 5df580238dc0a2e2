package session

import (
	"sync"
	"time"

	"github.com/five82/listviz/internal/visualizer"
)

// Snapshot represents the state at one point in time.
type Snapshot struct {
	State       visualizer.State
	Version     uint64
	LastUpdated time.Time
}

// Store coordinates concurrent access to the current state.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store holding initial.
func NewStore(initial visualizer.State) *Store {
	return &Store{snapshot: Snapshot{State: initial, LastUpdated: time.Now()}}
}

// Snapshot returns the current snapshot. States are values whose slices are
// never written in place, so the copy is independent of later updates.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Update runs fn against the current state and stores its result.
func (s *Store) Update(fn func(visualizer.State) (visualizer.State, []visualizer.Task)) (Snapshot, []visualizer.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, tasks := fn(s.snapshot.State)
	s.snapshot.State = next
	s.snapshot.Version++
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot, tasks
}

// Fire applies the pending task id. It reports false, leaving the snapshot
// untouched, when the task is no longer pending.
func (s *Store) Fire(id visualizer.TaskID) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.snapshot.State.Fire(id)
	if !ok {
		return s.snapshot, false
	}
	s.snapshot.State = next
	s.snapshot.Version++
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot, true
}
