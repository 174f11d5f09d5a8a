package style

import "github.com/charmbracelet/lipgloss"

// TUI palette.
var (
	Text    = lipgloss.Color("#e5e5e5")
	Subtext = lipgloss.Color("#a3a3a3")
	Overlay = lipgloss.Color("#6b6b6b")
	Surface = lipgloss.Color("#262626")

	AccentColor    = lipgloss.Color("#e50914")
	SecondaryColor = lipgloss.Color("#b20710")
	SuccessColor   = lipgloss.Color("#46d369")
	WarningColor   = lipgloss.Color("#f5c518")
	ErrorColor     = lipgloss.Color("#ff5555")
	FaintColor     = Overlay
)
