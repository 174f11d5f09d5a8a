package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, b.spinnerC.Tick}

	if b.state == historyState {
		return tea.Batch(append(cmds, b.loadHistory())...)
	}

	b.loading = true
	b.progressStatus = "Loading catalog"
	return tea.Batch(append(cmds, b.loadHome())...)
}
