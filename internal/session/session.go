package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/listviz/internal/logging"
	"github.com/five82/listviz/internal/visualizer"
)

// Options configures a Session.
type Options struct {
	Logger zerolog.Logger
	// OnChange is called after every accepted operation and every fired
	// task, in order. It runs with the session locked and must not call
	// Do, Press, SetInputs or Close.
	OnChange func(Snapshot)
}

// Session drives a visualizer state in real time. Operations may come from
// any goroutine; tasks fire on time.AfterFunc timers.
type Session struct {
	store    *Store
	logger   zerolog.Logger
	onChange func(Snapshot)

	mu     sync.Mutex
	timers map[visualizer.TaskID]*time.Timer
	idle   chan struct{} // closed while no timer is armed
	closed bool
}

// New creates a session starting from initial.
func New(initial visualizer.State, opts Options) *Session {
	idle := make(chan struct{})
	close(idle)
	return &Session{
		store:    NewStore(initial),
		logger:   logging.Component(opts.Logger, "session"),
		onChange: opts.OnChange,
		timers:   make(map[visualizer.TaskID]*time.Timer),
		idle:     idle,
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return s.store.Snapshot()
}

// SetInputs records the two field texts without notifying.
func (s *Session) SetInputs(value, position string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.store.Update(func(st visualizer.State) (visualizer.State, []visualizer.Task) {
		return st.SetValueInput(value).SetPositionInput(position), nil
	})
}

// Press runs op with the recorded field texts.
func (s *Session) Press(op visualizer.Op) (Snapshot, bool) {
	return s.Do(func(st visualizer.State) (visualizer.State, []visualizer.Task) {
		return st.Press(op)
	})
}

// Do runs fn as one operation. It reports whether fn scheduled any task;
// operations that schedule nothing were ignored and do not notify.
func (s *Session) Do(fn func(visualizer.State) (visualizer.State, []visualizer.Task)) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.store.Snapshot(), false
	}

	snap, tasks := s.store.Update(fn)
	if len(tasks) == 0 {
		return snap, false
	}

	s.reconcile(snap.State, tasks)
	s.notify(snap)
	return snap, true
}

// WaitIdle blocks until no timer is armed or ctx is done.
func (s *Session) WaitIdle(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops every timer. Later operations are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.updateIdle()
}

// reconcile stops timers whose tasks the new state no longer holds and
// arms timers for the new tasks. Caller holds s.mu.
func (s *Session) reconcile(st visualizer.State, tasks []visualizer.Task) {
	live := make(map[visualizer.TaskID]bool)
	for _, task := range st.Pending() {
		live[task.ID] = true
	}
	for id, timer := range s.timers {
		if !live[id] {
			timer.Stop()
			delete(s.timers, id)
			s.logger.Debug().Uint64("task", uint64(id)).Msg("timer stopped")
		}
	}

	for _, task := range tasks {
		id := task.ID
		s.timers[id] = time.AfterFunc(task.Delay, func() { s.fire(id) })
		s.logger.Debug().
			Uint64("task", uint64(id)).
			Str("op", task.Op.String()).
			Dur("delay", task.Delay).
			Msg("timer armed")
	}
	s.updateIdle()
}

func (s *Session) fire(id visualizer.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A timer stopped too late to prevent its callback is no longer tracked.
	if _, ok := s.timers[id]; !ok || s.closed {
		return
	}
	delete(s.timers, id)

	if snap, ok := s.store.Fire(id); ok {
		s.logger.Debug().
			Uint64("task", uint64(id)).
			Int("length", snap.State.Nodes.Len()).
			Msg("task fired")
		s.notify(snap)
	}
	s.updateIdle()
}

func (s *Session) notify(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

// updateIdle keeps the idle channel in step with the timer map. Caller
// holds s.mu.
func (s *Session) updateIdle() {
	select {
	case <-s.idle:
		if len(s.timers) > 0 {
			s.idle = make(chan struct{})
		}
	default:
		if len(s.timers) == 0 {
			close(s.idle)
		}
	}
}
