// Package visualizer holds the state machine behind the linked list widget.
//
// # Overview
//
// State is a single value record: the node sequence, the two input fields,
// the last message and complexity annotation, the highlight set, and the
// tasks waiting to fire. Every handler takes a State and returns the next
// one together with any tasks it scheduled. Nothing in this package sleeps
// or starts timers; callers own the clock.
//
// # Operations
//
//	InsertAtHead(v)         prepend, highlight {0}
//	InsertAtTail(v)         append, highlight {len-1}
//	InsertAtPosition(v, p)  splice at p, highlight {p}
//	DeleteFromHead()        highlight {0}, commit after the delete delay
//	DeleteFromTail()        highlight {len-1}, commit after the delete delay
//	DeleteAtPosition(p)     highlight {p}, commit after the delete delay
//	SearchNode(v)           highlight every match
//
// Invalid input (empty value, position out of range, empty list) is a
// silent no-op: the State comes back unchanged with no tasks.
//
// # Task Lifecycle
//
//	Insert:  Idle ──mutate+highlight──> Highlighting ──clear──> Idle
//	Delete:  Idle ──highlight──> Highlighting ──commit──> Idle
//	Search:  Idle ──highlight──> Highlighting ──clear──> Idle
//
// The caller waits Task.Delay and passes Task.ID to Fire. Fire ignores ids
// that are no longer pending, which is how cancelled timers become
// harmless without the caller having to stop them.
//
// # Overlap Policy
//
// An operation accepted while tasks are pending resolves them first:
//
//   - PolicyCancel: pending tasks are dropped (a pending delete is abandoned)
//   - PolicyFlush: pending tasks are applied at once
//   - PolicyOverlap: pending tasks stay live; a delete commits against the
//     sequence captured when it was scheduled
//
// Rejected operations never touch pending tasks.
package visualizer
