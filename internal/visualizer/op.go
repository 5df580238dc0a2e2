package visualizer

import (
	"fmt"
	"strings"
)

// Op identifies one of the seven list operations.
type Op int

const (
	OpNone Op = iota
	OpInsertHead
	OpInsertTail
	OpInsertAt
	OpDeleteHead
	OpDeleteTail
	OpDeleteAt
	OpSearch
)

// Ops lists the operations in the order the reference table shows them.
var Ops = []Op{
	OpInsertHead,
	OpInsertTail,
	OpInsertAt,
	OpDeleteHead,
	OpDeleteTail,
	OpDeleteAt,
	OpSearch,
}

var opNames = map[Op]string{
	OpInsertHead: "insert_head",
	OpInsertTail: "insert_tail",
	OpInsertAt:   "insert_at",
	OpDeleteHead: "delete_head",
	OpDeleteTail: "delete_tail",
	OpDeleteAt:   "delete_at",
	OpSearch:     "search",
}

var opLabels = map[Op]string{
	OpInsertHead: "Add Head",
	OpInsertTail: "Add Tail",
	OpInsertAt:   "Insert At Position",
	OpDeleteHead: "Delete Head",
	OpDeleteTail: "Delete Tail",
	OpDeleteAt:   "Delete At Position",
	OpSearch:     "Search",
}

// String returns the snake_case name used in scripts and logs.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "none"
}

// Label returns the button caption for the operation.
func (o Op) Label() string {
	return opLabels[o]
}

// IsDelete reports whether the operation removes a node.
func (o Op) IsDelete() bool {
	return o == OpDeleteHead || o == OpDeleteTail || o == OpDeleteAt
}

// ParseOp resolves a snake_case operation name. Dashes and case are ignored.
func ParseOp(name string) (Op, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for op, n := range opNames {
		if n == normalized {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("unknown operation %q", name)
}
