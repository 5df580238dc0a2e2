package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/listviz/internal/visualizer"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Reference  key.Binding

	// Inputs
	FocusValue    key.Binding
	FocusPosition key.Binding
	NextField     key.Binding
	Confirm       key.Binding
	Escape        key.Binding

	// Operations
	AddHead      key.Binding
	AddTail      key.Binding
	InsertAt     key.Binding
	Search       key.Binding
	DeleteHead   key.Binding
	DeleteTail   key.Binding
	DeleteAt     key.Binding
}

type opBinding struct {
	binding *key.Binding
	op      visualizer.Op
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	k := keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Reference: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Complexity table"),
		),

		// Inputs
		FocusValue: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Edit value"),
		),
		FocusPosition: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Edit position"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Done editing"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Done editing"),
		),

		// Operations
		AddHead: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", visualizer.OpInsertHead.Label()),
		),
		AddTail: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", visualizer.OpInsertTail.Label()),
		),
		InsertAt: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", visualizer.OpInsertAt.Label()),
		),
		Search: key.NewBinding(
			key.WithKeys("s", "/"),
			key.WithHelp("s", visualizer.OpSearch.Label()),
		),
		DeleteHead: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", visualizer.OpDeleteHead.Label()),
		),
		DeleteTail: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", visualizer.OpDeleteTail.Label()),
		),
		DeleteAt: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", visualizer.OpDeleteAt.Label()),
		),
	}
	return k
}

// operationFor maps a key press to the operation button it triggers.
func (k keyMap) operationFor(msg tea.KeyMsg) (visualizer.Op, bool) {
	bindings := []opBinding{
		{&k.AddHead, visualizer.OpInsertHead},
		{&k.AddTail, visualizer.OpInsertTail},
		{&k.InsertAt, visualizer.OpInsertAt},
		{&k.Search, visualizer.OpSearch},
		{&k.DeleteHead, visualizer.OpDeleteHead},
		{&k.DeleteTail, visualizer.OpDeleteTail},
		{&k.DeleteAt, visualizer.OpDeleteAt},
	}
	for _, b := range bindings {
		if key.Matches(msg, *b.binding) {
			return b.op, true
		}
	}
	return visualizer.OpNone, false
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.FocusValue, k.FocusPosition,
		k.AddHead, k.AddTail, k.InsertAt, k.Search,
		k.DeleteHead, k.DeleteTail, k.DeleteAt,
		k.Help, k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Inputs
		{k.FocusValue, k.FocusPosition, k.NextField, k.Confirm},
		// Insert
		{k.AddHead, k.AddTail, k.InsertAt},
		// Delete
		{k.DeleteHead, k.DeleteTail, k.DeleteAt},
		// General
		{k.Search, k.Reference, k.CycleTheme, k.Help, k.Quit},
	}
}
