package ui

import (
	"github.com/five82/listviz/internal/visualizer"
)

const appTitle = "Singly Linked List Operations"

// renderHeader renders the status bar: title, node count, phase and policy.
func (f frame) renderHeader(s visualizer.State) string {
	// Header uses Surface background
	styles := f.theme.Styles().WithBackground(f.theme.Surface)
	bg := NewBgStyle(f.theme.Surface)
	compact := f.width < LayoutCompactWidth

	var parts []string
	if !compact {
		parts = append(parts, bg.Render("listviz", styles.Logo))
	}
	parts = append(parts,
		bg.Render(appTitle, styles.Text.Bold(true)),
		bg.Render(plural(s.Nodes.Len(), "node"), styles.MutedText),
		f.renderPhase(s, styles, bg),
	)
	if !compact {
		parts = append(parts,
			bg.Render("Policy:", styles.FaintText)+bg.Space()+
				bg.Render(s.Policy().String(), styles.MutedText),
		)
	}

	return styles.Header.Width(f.width).Render(bg.Join(parts, "  "))
}

// renderPhase shows idle or the operation whose highlight is on screen.
func (f frame) renderPhase(s visualizer.State, styles Styles, bg BgStyle) string {
	if s.Phase() == visualizer.PhaseIdle {
		return bg.Render("● Idle", styles.SuccessText)
	}
	label := "Highlighting"
	if s.Active != visualizer.OpNone {
		label = s.Active.Label()
	}
	return bg.Render("● "+label, styles.WarningText.Bold(true))
}
