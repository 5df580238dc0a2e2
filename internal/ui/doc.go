// Package ui provides the terminal interface for listviz.
//
// # Architecture Overview
//
// The interface is a Bubble Tea program. Model owns a visualizer.State and
// two bubbles text inputs; every operation key runs State.Press and turns
// the returned tasks into tea.Tick commands. When a tick arrives its task
// id goes back through State.Fire, which drops ids that were superseded.
//
// # Package Structure
//
//   - app.go: Model, key handling, task scheduling and Run
//   - keys.go: key bindings shared by the footer and the help overlay
//   - frame.go: state-only rendering, also used headlessly by RenderFrame
//   - header.go: status bar with node count, phase and overlap policy
//   - chain.go: node boxes, Head/Tail labels and connectors
//   - reference.go: the complexity table (lipgloss/table)
//   - theme.go: color themes and derived lipgloss styles
//
// # Screen Layout
//
//	listviz  Singly Linked List Operations  3 nodes  ● Add Head  Policy: cancel
//
//	Value     Enter value
//	Position  Position (optional)
//
//	   [0]          [1]          [2]
//	┏━━━━━━━━┓   ╭────────╮   ╭────────╮
//	┃   5    ┃ → │   10   │ → │   20   │
//	┗━━━━━━━━┛   ╰────────╯   ╰────────╯
//	   Head                      Tail
//
//	Inserted at head
//	Time: O(1) | Space: O(1)
//
// Highlighted nodes use a thick border as well as a fill color, so they
// stay distinguishable without color support. Chains wider than the
// terminal wrap onto further rows.
package ui
