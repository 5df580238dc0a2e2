package ui

import (
	"strings"

	"github.com/five82/listviz/internal/visualizer"
)

// frame renders the parts of a screen that depend only on the theme, the
// width and the visualizer state.
type frame struct {
	theme  Theme
	styles Styles
	width  int
}

func newFrame(theme Theme, width int) frame {
	if width <= 0 {
		width = DefaultFrameWidth
	}
	return frame{theme: theme, styles: theme.Styles(), width: width}
}

// renderBody stacks the input fields, the chain, the operation result and
// optionally the reference table.
func (f frame) renderBody(s visualizer.State, fields string, reference bool) string {
	sections := []string{fields, f.renderChain(s), f.renderResult(s)}
	if reference {
		sections = append(sections, f.renderReference())
	}
	return strings.Join(filterStrings(sections), "\n\n")
}

// renderResult renders the message and complexity lines, skipping empty ones.
func (f frame) renderResult(s visualizer.State) string {
	var lines []string
	if s.Message != "" {
		lines = append(lines, f.styles.InfoText.Render(s.Message))
	}
	if c := s.Complexity.String(); c != "" {
		lines = append(lines, f.styles.WarningText.Render(c))
	}
	return strings.Join(lines, "\n")
}

// renderStaticFields renders the input fields as plain text, showing the
// placeholder when a field is empty.
func (f frame) renderStaticFields(s visualizer.State) string {
	field := func(label, value, placeholder string) string {
		text := f.styles.Text.Render(value)
		if value == "" {
			text = f.styles.FaintText.Render(placeholder)
		}
		return f.styles.MutedText.Render(padRight(label, fieldLabelWidth)) + text
	}
	return field("Value", s.ValueInput, valuePlaceholder) + "\n" +
		field("Position", s.PositionInput, positionPlaceholder)
}

// FrameOptions configures RenderFrame.
type FrameOptions struct {
	ThemeName string
	Width     int
	Reference bool
}

// RenderFrame renders a state without a running program, the way the
// interactive screen shows it minus the key help.
func RenderFrame(s visualizer.State, opts FrameOptions) string {
	f := newFrame(GetTheme(opts.ThemeName), opts.Width)
	return f.renderHeader(s) + "\n\n" + f.renderBody(s, f.renderStaticFields(s), opts.Reference)
}
