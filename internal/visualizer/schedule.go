package visualizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/listviz/internal/sequence"
)

// Default delays for highlight and delete animations.
const (
	DefaultInsertHighlight = 1500 * time.Millisecond
	DefaultDeleteDelay     = 1000 * time.Millisecond
	DefaultSearchHighlight = 2000 * time.Millisecond
)

// Timing holds the delays used when scheduling tasks.
type Timing struct {
	InsertHighlight time.Duration
	DeleteDelay     time.Duration
	SearchHighlight time.Duration
}

// DefaultTiming returns the stock animation delays.
func DefaultTiming() Timing {
	return Timing{
		InsertHighlight: DefaultInsertHighlight,
		DeleteDelay:     DefaultDeleteDelay,
		SearchHighlight: DefaultSearchHighlight,
	}
}

// withDefaults fills non-positive delays from DefaultTiming.
func (t Timing) withDefaults() Timing {
	def := DefaultTiming()
	if t.InsertHighlight <= 0 {
		t.InsertHighlight = def.InsertHighlight
	}
	if t.DeleteDelay <= 0 {
		t.DeleteDelay = def.DeleteDelay
	}
	if t.SearchHighlight <= 0 {
		t.SearchHighlight = def.SearchHighlight
	}
	return t
}

// OverlapPolicy decides what happens to pending tasks when a new operation
// is accepted before they fire.
type OverlapPolicy int

const (
	// PolicyCancel drops pending tasks. A pending delete never commits.
	PolicyCancel OverlapPolicy = iota
	// PolicyFlush applies pending tasks immediately, then runs the new operation.
	PolicyFlush
	// PolicyOverlap leaves pending tasks alone. A delete commits against the
	// sequence captured when it was scheduled.
	PolicyOverlap
)

var policyNames = []string{"cancel", "flush", "overlap"}

func (p OverlapPolicy) String() string {
	if int(p) >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy resolves a policy name. An empty name yields PolicyCancel.
func ParsePolicy(name string) (OverlapPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PolicyCancel, nil
	}
	for i, n := range policyNames {
		if n == name {
			return OverlapPolicy(i), nil
		}
	}
	return PolicyCancel, fmt.Errorf("unknown overlap policy %q (want one of %s)", name, strings.Join(policyNames, ", "))
}

// TaskID identifies a scheduled task within one State lineage.
type TaskID uint64

// TaskKind is what a task does when it fires.
type TaskKind int

const (
	// TaskClear empties the highlight set.
	TaskClear TaskKind = iota
	// TaskCommit removes the highlighted node, then clears the highlight.
	TaskCommit
)

func (k TaskKind) String() string {
	if k == TaskCommit {
		return "commit"
	}
	return "clear"
}

// Task is a deferred step. The caller waits Delay and then hands ID back
// to State.Fire.
type Task struct {
	ID    TaskID
	Kind  TaskKind
	Op    Op
	Delay time.Duration
	Pos   int
	Base  sequence.Sequence[string]
}
