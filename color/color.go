// Package color names the terminal colors used by trixio output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex string as a lipgloss color.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

// High-intensity variants.
var (
	HiRed    = New("9")
	HiYellow = New("11")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Brand colors carried over from the web front end.
var (
	Primary   = New("#e50914")
	Secondary = New("#b20710")
	Gray      = New("#808080")
)
