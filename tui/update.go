package tui

import (
	"fmt"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/history"
	"github.com/trixio-cli/trixio/internal/ui"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/playback"
	"github.com/trixio-cli/trixio/query"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case error:
		log.Error(msg)
		b.stopLoading()
		b.raiseError(msg)
		return b, tea.Batch(cmds...)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case homeMsg, titlesMsg, seasonsMsg, episodesMsg:
		// a result arriving after the user backed out of loading is stale
		if !b.loading {
			return b, tea.Batch(cmds...)
		}
		b.stopLoading()
		return b, tea.Batch(append(cmds, b.handleLoaded(msg))...)
	case historyMsg:
		return b, tea.Batch(append(cmds, b.historyC.SetItems(lo.Map(msg, func(e *history.Entry, _ int) list.Item {
			return &listItem{internal: e}
		})))...)
	case playedMsg:
		if msg.err != nil {
			cmds = append(cmds, ui.Notify("Player failed: "+msg.err.Error(), ui.Error))
		} else {
			cmds = append(cmds, ui.Notify("Finished "+msg.name, ui.Success))
		}
		if b.state == historyState {
			cmds = append(cmds, b.loadHistory())
		}
		return b, tea.Batch(cmds...)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			return b, tea.Batch(append(cmds, b.goBack())...)
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)

	switch b.state {
	case homeState:
		model, cmd = b.updateHome(msg)
	case searchState:
		model, cmd = b.updateSearch(msg)
	case titlesState:
		model, cmd = b.updateTitles(msg)
	case seasonsState:
		model, cmd = b.updateSeasons(msg)
	case episodesState:
		model, cmd = b.updateEpisodes(msg)
	case historyState:
		model, cmd = b.updateHistory(msg)
	case relaysState:
		model, cmd = b.updateRelays(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) goBack() tea.Cmd {
	switch {
	case b.state == searchState && b.inputC.Value() != "":
		b.inputC.SetValue("")
		b.searchSuggestion = mo.None[string]()
		return nil
	case b.state == loadingState && b.statesHistory.Len() == 0:
		return tea.Quit
	}

	b.stopLoading()
	b.previousState()
	return nil
}

func (b *statefulBubble) handleLoaded(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case homeMsg:
		items := lo.Map(msg, func(r catalog.SectionResult, _ int) list.Item {
			item := &sectionItem{result: r}
			if r.Err == nil {
				titles, err := catalog.Titles(r.Response)
				if err != nil {
					item.result.Err = err
				}
				item.titles = titles
			}
			return &listItem{internal: item}
		})

		b.newState(homeState)
		return b.homeC.SetItems(items)
	case titlesMsg:
		b.lastQuery = msg.query
		b.titlesC.Title = msg.heading
		b.titlesC.ResetSelected()
		b.newState(titlesState)

		cmd := b.titlesC.SetItems(titleItems(msg.titles, msg.query))
		if len(msg.titles) == 0 {
			return tea.Batch(cmd, ui.Notify("No results", ui.Warning))
		}
		return cmd
	case seasonsMsg:
		b.selectedTitle = msg.show
		b.seasonsC.Title = msg.show.DisplayName()
		b.seasonsC.ResetSelected()
		b.newState(seasonsState)

		var items []list.Item
		for _, s := range msg.show.Seasons {
			// season 0 holds specials, which the provider cannot address
			if s.SeasonNumber == 0 {
				continue
			}
			items = append(items, &listItem{internal: &seasonItem{number: s.SeasonNumber, episodes: s.EpisodeCount, name: s.Name}})
		}
		return b.seasonsC.SetItems(items)
	case episodesMsg:
		b.selectedTitle = msg.show
		b.episodesC.Title = fmt.Sprintf("%s · %s", msg.show.DisplayName(), msg.season.Name)
		b.episodesC.ResetSelected()
		b.newState(episodesState)

		items := make([]list.Item, len(msg.season.Episodes))
		for i := range msg.season.Episodes {
			e := msg.season.Episodes[i]
			items[i] = &listItem{internal: &seasonEpisode{Episode: e, season: msg.season.SeasonNumber}}
		}
		return b.episodesC.SetItems(items)
	}

	return nil
}

func (b *statefulBubble) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.search):
			return b, b.enterSearch()
		case bubblesKey.Matches(msg, b.keymap.history):
			b.newState(historyState)
			return b, b.loadHistory()
		case bubblesKey.Matches(msg, b.keymap.relays):
			b.newState(relaysState)
			return b, b.refreshRelays()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.homeC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}

			section := item.internal.(*sectionItem)
			if section.result.Err != nil {
				return b, ui.Notify(section.result.Err.Error(), ui.Error)
			}

			b.titlesC.Title = section.result.Section.Name
			b.titlesC.ResetSelected()
			b.newState(titlesState)
			return b, b.titlesC.SetItems(titleItems(section.titles, ""))
		}
	}

	b.homeC, cmd = b.homeC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) enterSearch() tea.Cmd {
	b.inputC.SetValue("")
	b.searchSuggestion = mo.None[string]()
	b.newState(searchState)
	return b.inputC.Focus()
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			q := strings.TrimSpace(b.inputC.Value())
			if !query.Valid(q) {
				return b, ui.Notify(fmt.Sprintf("Type at least %d characters", viper.GetInt(key.SearchMinLength)), ui.Warning)
			}

			b.startLoading(fmt.Sprintf("Searching for %q", q))
			return b, b.searchTitles(q)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			if s, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(s)
				b.inputC.CursorEnd()
			}
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if value := strings.TrimSpace(b.inputC.Value()); value != "" {
		b.searchSuggestion = query.Suggest(value)
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) selectedTarget() (string, playback.Target, bool) {
	switch b.state {
	case titlesState:
		item, ok := b.titlesC.SelectedItem().(*listItem)
		if !ok {
			return "", playback.Target{}, false
		}
		t := item.internal.(*catalog.Title)
		if t.IsMovie() {
			return t.String(), playback.Movie(t.ContentID()), true
		}
		return t.String(), playback.Show(t.ContentID()), true
	case episodesState:
		item, ok := b.episodesC.SelectedItem().(*listItem)
		if !ok || b.selectedTitle == nil {
			return "", playback.Target{}, false
		}
		e := item.internal.(*seasonEpisode)
		return b.selectedTitle.DisplayName(), playback.Episode(b.selectedTitle.ContentID(), e.season, e.EpisodeNumber), true
	}

	return "", playback.Target{}, false
}

func (b *statefulBubble) updateTitles(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.search):
			return b, b.enterSearch()
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if _, target, ok := b.selectedTarget(); ok {
				return b, b.openProviderPage(target)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.titlesC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}

			t := item.internal.(*catalog.Title)
			if t.IsMovie() {
				return b, b.play(t.String(), playback.Movie(t.ContentID()))
			}

			b.startLoading("Loading seasons of " + t.DisplayName())
			return b, b.loadSeasons(t)
		}
	}

	b.titlesC, cmd = b.titlesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSeasons(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		item, ok := b.seasonsC.SelectedItem().(*listItem)
		if !ok || b.selectedTitle == nil {
			return b, nil
		}

		s := item.internal.(*seasonItem)
		b.startLoading("Loading " + s.name)
		return b, b.loadEpisodes(b.selectedTitle, s.number)
	}

	b.seasonsC, cmd = b.seasonsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if _, target, ok := b.selectedTarget(); ok {
				return b, b.openProviderPage(target)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.play):
			if name, target, ok := b.selectedTarget(); ok {
				return b, b.play(name, target)
			}
			return b, nil
		}
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		item, selected := b.historyC.SelectedItem().(*listItem)

		switch {
		case bubblesKey.Matches(msg, b.keymap.play) && selected:
			e := item.internal.(*history.Entry)
			return b, b.play(e.Title, e.Target())
		case bubblesKey.Matches(msg, b.keymap.remove) && selected:
			if err := history.Remove(item.internal.(*history.Entry)); err != nil {
				return b, ui.Notify(err.Error(), ui.Error)
			}
			return b, b.loadHistory()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateRelays(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		if item, ok := b.relaysC.SelectedItem().(*listItem); ok {
			return b, b.selectRelay(item.internal.(*relayItem).index)
		}
		return b, nil
	}

	b.relaysC, cmd = b.relaysC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return b, tea.Quit
	}

	return b, nil
}
