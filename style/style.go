// Package style composes lipgloss styles into plain string renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/valtips-cli/valtips/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer with the given foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Bg returns a renderer with the given background color.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Background(c).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title is the header shown above every list.
var Title = func(s string) string {
	return Colored(color.Cream, color.Valorant).Bold(true).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.Cream, color.Red).Padding(0, 1).Render(s)
}

// Tag renders s as a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Role renders a role name in its own color. Unknown roles are left uncolored.
func Role(name string) string {
	c, ok := color.Role[name]
	if !ok {
		return name
	}
	return Fg(c)(name)
}
