package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"pickperfect/internal/colormodel"
)

// swatcher paints a small sample of a color. Output that is not a terminal
// gets the bare label.
type swatcher struct {
	renderer *lipgloss.Renderer
}

func newSwatcher(out io.Writer) swatcher {
	return swatcher{renderer: lipgloss.NewRenderer(out)}
}

func (s swatcher) block(hex string) string {
	c := colormodel.ParseHex(hex)
	return s.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(colormodel.LabelInk(c).Hex())).
		Render(" Aa ")
}
