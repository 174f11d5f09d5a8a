// Package tui is the interactive catalog browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/playback"
)

// Options wires the browser to its collaborators.
type Options struct {
	Redirector *playback.Redirector
	Fetch      catalog.Fetcher

	// Player is the executable handed the relayed URL. Empty means the
	// system default handler.
	Player      string
	SaveHistory bool

	// OnRelaySelected persists a relay change. Optional.
	OnRelaySelected func(index int) error

	// Continue starts in the history view instead of the home page.
	Continue bool
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)

	if options.Continue {
		bubble.newState(historyState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
