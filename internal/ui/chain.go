package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/listviz/internal/visualizer"
)

const connector = " → "

// renderChain draws the nodes as boxes joined by arrows. Rows wrap when
// the chain is wider than the frame; a row that continues on the next one
// ends with an arrow.
func (f frame) renderChain(s visualizer.State) string {
	n := s.Nodes.Len()
	if n == 0 {
		return f.styles.MutedText.Render("Empty List")
	}

	perRow := max(1, f.width/(nodeOuterWidth+lipgloss.Width(connector)))
	arrow := "\n\n" + f.styles.Connector.Render(connector)

	var rows, cells []string
	for i, value := range s.Nodes.All() {
		cells = append(cells, f.renderNode(i, value, n, s.Highlighted(i)))
		if i < n-1 {
			cells = append(cells, arrow)
		}
		if (i+1)%perRow == 0 || i == n-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = cells[:0]
		}
	}
	return strings.Join(rows, "\n\n")
}

// renderNode renders one node: its index, the boxed value and the Head and
// Tail pointers.
func (f frame) renderNode(i int, value string, n int, highlighted bool) string {
	box := f.styles.Node
	if highlighted {
		box = f.styles.NodeHighlight
	}

	parts := []string{
		f.styles.NodeLabel.Render("[" + strconv.Itoa(i) + "]"),
		box.Render(truncate(singleLine(value), nodeInnerWidth)),
	}
	if i == 0 {
		parts = append(parts, f.styles.NodeLabel.Render("Head"))
	}
	if i == n-1 {
		parts = append(parts, f.styles.NodeLabel.Render("Tail"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
