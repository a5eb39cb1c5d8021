package cli

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

//go:embed guide.md
var guideMarkdown string

// RunGuide renders the embedded usage guide as terminal-friendly markdown.
// When rendering fails (dumb terminals, no TTY), the raw markdown is written
// instead so the guide is never unavailable.
func RunGuide(out io.Writer) error {
	p := termenv.ColorProfile()
	title := termenv.String("offsetticks").Foreground(p.Color("#818cf8")).Bold()
	fmt.Fprintf(out, "\n  %s - offset tick labeling\n", title)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		fmt.Fprintln(out, guideMarkdown)
		return nil
	}

	rendered, err := r.Render(guideMarkdown)
	if err != nil {
		fmt.Fprintln(out, guideMarkdown)
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}
