package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/listviz/internal/visualizer"
)

// renderReference renders the static complexity table. Compact layouts
// drop the notes column.
func (f frame) renderReference() string {
	compact := f.width < LayoutCompactWidth

	headers := []string{"Operation", "Time Complexity", "Space Complexity"}
	if !compact {
		headers = append(headers, "Notes")
	}

	headerStyle := f.styles.AccentText.Bold(true).Padding(0, 1)
	nameStyle := f.styles.Text.Padding(0, 1)
	cellStyle := f.styles.MutedText.Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(f.theme.Border))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		})

	for _, ref := range visualizer.ReferenceTable() {
		cells := []string{ref.Name, ref.Time, ref.Space}
		if !compact {
			cells = append(cells, ref.Notes)
		}
		t.Row(cells...)
	}

	title := f.styles.Text.Bold(true).Render("Operation Complexities")
	return title + "\n" + t.Render()
}
