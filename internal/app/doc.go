// Package app provides the orchestration layer for listviz.
//
// # Overview
//
// This package wires configuration, preferences, logging and the visualizer
// together for each command. It serves as the composition root: every
// command loads the same environment and then hands off to the interface
// or to a headless replay.
//
// # Components
//
//   - app.go: environment loading and Run, which starts the TUI
//   - replay.go: headless playback of YAML scripts
//   - table.go: the complexity reference rendered through glamour
//
// # Data Flow
//
//	┌──────────────┐
//	│ Run/Replay() │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Read timings and policy
//	       ├─────> prefs.Load()     Read theme and table visibility
//	       ├─────> logging.New()    Open the log file, if any
//	       ├─────> ui.Run()         Start TUI (blocks)
//	       └─────> replay           Script → frames on stdout
//
// # Replay Clocks
//
// Replay has two clocks. The default virtual clock is deterministic: each
// step runs at the current offset, the clock then advances by the step's
// wait, and every task due by then fires in due order. Whatever is still
// pending after the last step runs out at the end. With Realtime set the
// script drives a session.Session, so delays are real and frames are
// printed as timers fire.
//
// # Error Handling
//
// Fatal errors (returned):
//   - Invalid configuration or log file that cannot be opened
//   - Script that cannot be read or parsed
//   - Context cancellation during a realtime replay
//
// Preferences never fail to load; broken files fall back to defaults.
package app
