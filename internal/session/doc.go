// Package session provides a goroutine-safe, real-time driver for a
// visualizer state.
//
// # Overview
//
// The interactive program gets its timers from Bubble Tea. Headless callers
// (the replay command, tests) use a Session instead: operations go through
// Do or Press from any goroutine, and every task the state schedules is
// armed as a time.AfterFunc timer that feeds its id back into State.Fire.
//
//	Caller:                       Timers:
//	┌───────────────┐            ┌───────────────────┐
//	│ Press(op)     │──arm──────→│ AfterFunc(delay)  │
//	│      ↓        │            │        ↓          │
//	│ store.Update()│            │ store.Fire(id)    │
//	└───────────────┘            └───────────────────┘
//	        └──────── Store (RWMutex) ───────┘
//
// # Superseded Tasks
//
// When an operation drops pending tasks (the cancel and flush overlap
// policies), the session stops their timers. A callback that was already
// running when Stop was called finds its id untracked and returns.
//
// # Lifecycle
//
// WaitIdle blocks until no timer is armed. Close stops all timers and makes
// the session ignore further operations; it does not settle pending tasks.
package session
