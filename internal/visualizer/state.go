package visualizer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/five82/listviz/internal/sequence"
)

// Phase is the coarse animation state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHighlighting
)

func (p Phase) String() string {
	if p == PhaseHighlighting {
		return "highlighting"
	}
	return "idle"
}

// State is the whole widget state. It is a value: handlers never modify
// the receiver and always return the next State.
type State struct {
	Nodes sequence.Sequence[string]

	ValueInput    string
	PositionInput string
	SearchText    string

	Message    string
	Complexity Complexity

	// Highlight holds node indexes in ascending order. Slices are replaced,
	// never written in place, so copies of a State stay independent.
	Highlight []int
	Active    Op

	timing  Timing
	policy  OverlapPolicy
	nextID  TaskID
	pending []Task
}

// New returns an empty State.
func New(timing Timing, policy OverlapPolicy) State {
	return State{timing: timing.withDefaults(), policy: policy}
}

// Timing returns the delays used by this state.
func (s State) Timing() Timing {
	return s.timing.withDefaults()
}

// Policy returns the overlap policy.
func (s State) Policy() OverlapPolicy {
	return s.policy
}

// Values returns the node values from head to tail.
func (s State) Values() []string {
	return s.Nodes.Values()
}

// Phase reports whether a highlight cycle is in progress.
func (s State) Phase() Phase {
	if len(s.pending) > 0 || len(s.Highlight) > 0 {
		return PhaseHighlighting
	}
	return PhaseIdle
}

// Highlighted reports whether node i is highlighted. Indexes outside the
// current sequence are never highlighted.
func (s State) Highlighted(i int) bool {
	if i < 0 || i >= s.Nodes.Len() {
		return false
	}
	_, found := slices.BinarySearch(s.Highlight, i)
	return found
}

// Pending returns the tasks waiting to fire, oldest first.
func (s State) Pending() []Task {
	return slices.Clone(s.pending)
}

// SetValueInput records the value field text.
func (s State) SetValueInput(v string) State {
	s.ValueInput = v
	return s
}

// SetPositionInput records the position field text.
func (s State) SetPositionInput(v string) State {
	s.PositionInput = v
	return s
}

// InsertAtHead prepends value. Empty values are ignored.
func (s State) InsertAtHead(value string) (State, []Task) {
	if value == "" {
		return s, nil
	}
	next := s.supersede()
	next.Nodes = next.Nodes.PushFront(value)
	next.ValueInput = ""
	next.setResult(OpInsertHead, "Inserted at head")
	return next.highlight(OpInsertHead, []int{0}, next.Timing().InsertHighlight)
}

// InsertAtTail appends value. Empty values are ignored.
func (s State) InsertAtTail(value string) (State, []Task) {
	if value == "" {
		return s, nil
	}
	next := s.supersede()
	next.Nodes = next.Nodes.PushBack(value)
	next.ValueInput = ""
	next.setResult(OpInsertTail, "Inserted at tail")
	return next.highlight(OpInsertTail, []int{next.Nodes.Len() - 1}, next.Timing().InsertHighlight)
}

// InsertAtPosition places value at pos, shifting later nodes right. It is
// ignored when value is empty or pos is outside [0, length].
func (s State) InsertAtPosition(value string, pos int) (State, []Task) {
	if value == "" {
		return s, nil
	}
	next := s.supersede()
	nodes, err := next.Nodes.Insert(pos, value)
	if err != nil {
		return s, nil
	}
	next.Nodes = nodes
	next.ValueInput = ""
	next.PositionInput = ""
	next.setResult(OpInsertAt, fmt.Sprintf("Inserted at position %d", pos))
	return next.highlight(OpInsertAt, []int{pos}, next.Timing().InsertHighlight)
}

// DeleteFromHead highlights the head and schedules its removal.
func (s State) DeleteFromHead() (State, []Task) {
	next := s.supersede()
	if next.Nodes.Len() == 0 {
		return s, nil
	}
	return next.beginDelete(OpDeleteHead, 0)
}

// DeleteFromTail highlights the tail and schedules its removal.
func (s State) DeleteFromTail() (State, []Task) {
	next := s.supersede()
	n := next.Nodes.Len()
	if n == 0 {
		return s, nil
	}
	return next.beginDelete(OpDeleteTail, n-1)
}

// DeleteAtPosition highlights pos and schedules its removal. It is ignored
// when pos is outside [0, length).
func (s State) DeleteAtPosition(pos int) (State, []Task) {
	next := s.supersede()
	if pos < 0 || pos >= next.Nodes.Len() {
		return s, nil
	}
	return next.beginDelete(OpDeleteAt, pos)
}

// SearchNode highlights every node equal to value. Empty values are ignored.
func (s State) SearchNode(value string) (State, []Task) {
	if value == "" {
		return s, nil
	}
	next := s.supersede()
	matches := next.Nodes.IndexesOf(value)
	next.SearchText = value
	if len(matches) > 0 {
		next.setResult(OpSearch, "Found at position(s): "+joinInts(matches))
	} else {
		next.setResult(OpSearch, "Not found")
	}
	return next.highlight(OpSearch, matches, next.Timing().SearchHighlight)
}

// Press runs op with the current field contents, the way the buttons do.
// Position operations are ignored when the position field is blank or not
// an integer.
func (s State) Press(op Op) (State, []Task) {
	switch op {
	case OpInsertHead:
		return s.InsertAtHead(s.ValueInput)
	case OpInsertTail:
		return s.InsertAtTail(s.ValueInput)
	case OpInsertAt:
		pos, ok := parsePosition(s.PositionInput)
		if !ok {
			return s, nil
		}
		return s.InsertAtPosition(s.ValueInput, pos)
	case OpDeleteHead:
		return s.DeleteFromHead()
	case OpDeleteTail:
		return s.DeleteFromTail()
	case OpDeleteAt:
		pos, ok := parsePosition(s.PositionInput)
		if !ok {
			return s, nil
		}
		return s.DeleteAtPosition(pos)
	case OpSearch:
		return s.SearchNode(s.ValueInput)
	}
	return s, nil
}

// Fire applies the pending task with the given id. Unknown ids belong to
// tasks that were cancelled or already applied; they are ignored and Fire
// reports false.
func (s State) Fire(id TaskID) (State, bool) {
	i := slices.IndexFunc(s.pending, func(t Task) bool { return t.ID == id })
	if i < 0 {
		return s, false
	}
	task := s.pending[i]
	s.pending = slices.Delete(slices.Clone(s.pending), i, i+1)
	return s.apply(task), true
}

// Settle applies every pending task immediately, oldest first.
func (s State) Settle() State {
	for len(s.pending) > 0 {
		s, _ = s.Fire(s.pending[0].ID)
	}
	return s
}

// supersede resolves pending tasks before a new operation, per policy.
func (s State) supersede() State {
	if len(s.pending) == 0 {
		return s
	}
	switch s.policy {
	case PolicyCancel:
		s.pending = nil
		s.Highlight = nil
		s.Active = OpNone
	case PolicyFlush:
		return s.Settle()
	}
	return s
}

func (s State) highlight(op Op, indexes []int, delay time.Duration) (State, []Task) {
	s.Highlight = slices.Clone(indexes)
	s.Active = op
	task := s.schedule(TaskClear, op, delay, -1)
	return s, []Task{task}
}

func (s State) beginDelete(op Op, pos int) (State, []Task) {
	s.Highlight = []int{pos}
	s.Active = op
	task := s.schedule(TaskCommit, op, s.Timing().DeleteDelay, pos)
	return s, []Task{task}
}

// schedule appends a task to s.pending. It must only be called on a State
// that is about to be returned.
func (s *State) schedule(kind TaskKind, op Op, delay time.Duration, pos int) Task {
	s.nextID++
	task := Task{ID: s.nextID, Kind: kind, Op: op, Delay: delay, Pos: pos, Base: s.Nodes}
	s.pending = append(slices.Clone(s.pending), task)
	return task
}

func (s State) apply(task Task) State {
	if task.Kind == TaskCommit {
		base := s.Nodes
		if s.policy == PolicyOverlap {
			base = task.Base
		}
		if nodes, _, err := base.RemoveAt(task.Pos); err == nil {
			s.Nodes = nodes
			s.setResult(task.Op, commitMessage(task))
			if task.Op == OpDeleteAt {
				s.PositionInput = ""
			}
		}
	}
	s.Highlight = nil
	s.Active = OpNone
	return s
}

func (s *State) setResult(op Op, message string) {
	s.Message = message
	s.Complexity = op.Complexity()
}

func commitMessage(task Task) string {
	switch task.Op {
	case OpDeleteHead:
		return "Deleted from head"
	case OpDeleteTail:
		return "Deleted from tail"
	default:
		return fmt.Sprintf("Deleted at position %d", task.Pos)
	}
}

func parsePosition(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	pos, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return pos, true
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
