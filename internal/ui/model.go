// Package ui renders short-lived notifications at the bottom of a bubbletea view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/style"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// Notification is a tea.Msg shown by Model until Lifetime passes.
type Notification struct {
	Text  string
	Level Level
}

type clearMsg struct {
	id int
}

// Notify returns a command emitting a notification.
func Notify(text string, level Level) tea.Cmd {
	return func() tea.Msg {
		return Notification{Text: text, Level: level}
	}
}

// Model holds the visible notification, if any.
type Model struct {
	current Notification
	id      int
}

// Update shows incoming notifications and clears them after Lifetime. A
// newer notification restarts the timer.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.current = msg
		m.id++
		id := m.id
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{id: id}
		})
	case clearMsg:
		if msg.id == m.id {
			m.current = Notification{}
		}
	}
	return nil
}

// Text is the visible notification text, empty when none.
func (m *Model) Text() string {
	return m.current.Text
}

func (n Notification) render() string {
	var (
		c      lipgloss.Color
		prefix string
	)

	switch n.Level {
	case Success:
		c, prefix = style.SuccessColor, icon.Get(icon.Success)
	case Warning:
		c, prefix = style.WarningColor, "!"
	case Error:
		c, prefix = style.ErrorColor, icon.Get(icon.Fail)
	default:
		c = style.Subtext
	}

	text := n.Text
	if prefix != "" {
		text = prefix + " " + text
	}
	return style.Fg(c)(text)
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.current.Text == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + m.current.render()
	return strings.Join(lines, "\n")
}
