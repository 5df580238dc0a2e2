package visualizer

import (
	"fmt"
	"strings"
)

// Complexity is a static Time/Space annotation. It is never measured.
type Complexity struct {
	Time  string
	Space string
}

// String renders the annotation as "Time: O(1) | Space: O(1)".
// The zero value renders as an empty string.
func (c Complexity) String() string {
	if c == (Complexity{}) {
		return ""
	}
	return fmt.Sprintf("Time: %s | Space: %s", c.Time, c.Space)
}

// Reference is one row of the complexity reference table.
type Reference struct {
	Op    Op
	Name  string
	Time  string
	Space string
	Notes string
}

var references = []Reference{
	{OpInsertHead, "Insert at Head", "O(1)", "O(1)", "Constant time operation"},
	{OpInsertTail, "Insert at Tail", "O(1)", "O(1)", "With tail pointer"},
	{OpInsertAt, "Insert at Position", "O(n)", "O(1)", "Requires traversal to position"},
	{OpDeleteHead, "Delete from Head", "O(1)", "O(1)", "Constant time operation"},
	{OpDeleteTail, "Delete from Tail", "O(n)", "O(1)", "Requires traversal to find second-last node"},
	{OpDeleteAt, "Delete at Position", "O(n)", "O(1)", "Requires traversal to position"},
	{OpSearch, "Search", "O(n)", "O(1)", "May require full traversal"},
}

// The status line wording differs from the table for tail inserts.
var annotations = map[Op]Complexity{
	OpInsertHead: {"O(1)", "O(1)"},
	OpInsertTail: {"O(1) with tail pointer", "O(1)"},
	OpInsertAt:   {"O(n)", "O(1)"},
	OpDeleteHead: {"O(1)", "O(1)"},
	OpDeleteTail: {"O(n)", "O(1)"},
	OpDeleteAt:   {"O(n)", "O(1)"},
	OpSearch:     {"O(n)", "O(1)"},
}

// Complexity returns the annotation shown after the operation completes.
func (o Op) Complexity() Complexity {
	return annotations[o]
}

// ReferenceTable returns a copy of the fixed reference rows.
func ReferenceTable() []Reference {
	out := make([]Reference, len(references))
	copy(out, references)
	return out
}

// ReferenceMarkdown renders the reference table as a markdown document.
func ReferenceMarkdown() string {
	var b strings.Builder
	b.WriteString("# Operation Complexities\n\n")
	b.WriteString("| Operation | Time Complexity | Space Complexity | Notes |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range references {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Name, r.Time, r.Space, r.Notes)
	}
	return b.String()
}
