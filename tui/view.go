package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/trixio-cli/trixio/constant"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case homeState:
		output = listExtraPaddingStyle.Render(b.homeC.View())
	case searchState:
		output = b.viewSearch()
	case titlesState:
		output = listExtraPaddingStyle.Render(b.titlesC.View())
	case seasonsState:
		output = listExtraPaddingStyle.Render(b.seasonsC.View())
	case episodesState:
		output = listExtraPaddingStyle.Render(b.episodesC.View())
	case historyState:
		output = listExtraPaddingStyle.Render(b.historyC.View())
	case relaysState:
		output = listExtraPaddingStyle.Render(b.relaysC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	status := b.spinnerC.View() + " " + b.progressStatus
	if b.width > 0 {
		status = truncate.StringWithTail(status, uint(b.width), "…")
	}

	return b.renderLines(
		true,
		[]string{
			style.Title(constant.Brand),
			"",
			status,
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	}

	if s, ok := b.searchSuggestion.Get(); ok && s != strings.ToLower(strings.TrimSpace(b.inputC.Value())) {
		lines = append(lines, "", style.Faint(icon.Get(icon.Search)+" "+s+"  (tab)"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	var text string
	if b.lastError != nil {
		text = b.lastError.Error()
	}

	body := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true).Render(text)
	if b.width > 0 {
		body = wrap.String(body, b.width)
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			body,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
