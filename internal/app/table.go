package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/five82/listviz/internal/visualizer"
)

// TableOptions configure PrintTable.
type TableOptions struct {
	// Style is a glamour style name ("dark", "light", "notty", ...). Empty
	// detects the terminal background.
	Style string
	Width int
}

// PrintTable renders the complexity reference as markdown through glamour.
func PrintTable(w io.Writer, opts TableOptions) error {
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	renderOpts := []glamour.TermRendererOption{styleOpt}
	if opts.Width > 0 {
		renderOpts = append(renderOpts, glamour.WithWordWrap(opts.Width))
	}

	r, err := glamour.NewTermRenderer(renderOpts...)
	if err != nil {
		return fmt.Errorf("init markdown renderer: %w", err)
	}
	out, err := r.Render(visualizer.ReferenceMarkdown())
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
