package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/constant"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/open"
	"github.com/trixio-cli/trixio/style"
)

// CheckDependencies exits when the configured player is not on PATH.
// An empty player means the system opener, which needs no check.
func CheckDependencies() {
	player := viper.GetString(key.PlaybackPlayer)
	if player == "" || open.Available(player) {
		return
	}

	printMissingDependencyError(player)
	os.Exit(1)
}

func installHint(dep string) string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install " + dep
	case constant.Linux:
		return "sudo apt install " + dep
	case constant.Windows:
		return "scoop install " + dep
	default:
		return ""
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The player '%s' was not found in your PATH.", dep))

	suggestion := fmt.Sprintf("\n\nSet %s to another player or leave it empty to use the system opener.", style.Fg(color.Yellow)(key.PlaybackPlayer))
	if hint := installHint(dep); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint)) + suggestion
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
