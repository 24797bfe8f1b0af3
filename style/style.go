// Package style provides a functional API for composing and applying lipgloss styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/coll-cli/coll/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Text transformation helpers.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Bracket highlights the outer brackets of a rendered collection.
func Bracket(rendered string) string {
	if len(rendered) < 2 {
		return rendered
	}
	paint := Fg(color.Cyan)
	return paint(rendered[:1]) + rendered[1:len(rendered)-1] + paint(rendered[len(rendered)-1:])
}
