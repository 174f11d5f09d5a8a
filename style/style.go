// Package style composes lipgloss styles into small render functions.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/trixio-cli/trixio/color"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer painting text with c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a padded banner in brand colors.
var Title = func(s string) string {
	return Colored(color.White, color.Primary).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle renders a padded banner for failures.
var ErrorTitle = func(s string) string {
	return Colored(color.White, color.Red).Padding(0, 1).Render(s)
}

// Tag renders s as a small colored badge.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Mark highlights a search match inside a line.
var Mark = func(s string) string {
	return Colored(color.White, color.Primary).Render(s)
}
