package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/history"
	"github.com/trixio-cli/trixio/internal/ui"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/open"
	"github.com/trixio-cli/trixio/playback"
	"github.com/trixio-cli/trixio/query"
	"github.com/trixio-cli/trixio/util"
)

type (
	homeMsg   []catalog.SectionResult
	titlesMsg struct {
		heading string
		query   string
		titles  []*catalog.Title
	}
	seasonsMsg struct {
		show *catalog.Title
	}
	episodesMsg struct {
		show   *catalog.Title
		season *catalog.Season
	}
	historyMsg []*history.Entry
	playedMsg  struct {
		name string
		err  error
	}
)

func (b *statefulBubble) loadHome() tea.Cmd {
	ctx, fetch := b.ctx, b.options.Fetch
	return func() tea.Msg {
		log.Info("loading home sections")
		return homeMsg(catalog.LoadSections(ctx, catalog.HomeSections(), fetch))
	}
}

func (b *statefulBubble) searchTitles(q string) tea.Cmd {
	ctx, fetch := b.ctx, b.options.Fetch
	return func() tea.Msg {
		log.Info("searching for " + q)
		if err := query.Remember(q, 1); err != nil {
			log.Warn(err)
		}

		resp, err := catalog.SearchWith(ctx, fetch, q, 1)
		if err != nil {
			return err
		}

		titles, err := catalog.Titles(resp)
		if err != nil {
			return err
		}

		titles = lo.Reject(titles, func(t *catalog.Title, _ int) bool {
			return t.IsPerson()
		})

		log.Infof("found %s", util.Quantify(len(titles), "title", "titles"))
		return titlesMsg{heading: fmt.Sprintf("Results for %q", q), query: q, titles: titles}
	}
}

func (b *statefulBubble) loadSeasons(t *catalog.Title) tea.Cmd {
	ctx, fetch := b.ctx, b.options.Fetch
	return func() tea.Msg {
		resp, err := fetch(ctx, catalog.TVDetailsRequest(t.ContentID()))
		if err != nil {
			return err
		}

		show, err := catalog.DecodeTitle(resp)
		if err != nil {
			return err
		}
		show.MediaType = "tv"

		return seasonsMsg{show: show}
	}
}

func (b *statefulBubble) loadEpisodes(show *catalog.Title, season int) tea.Cmd {
	ctx, fetch := b.ctx, b.options.Fetch
	return func() tea.Msg {
		resp, err := fetch(ctx, catalog.TVSeasonRequest(show.ContentID(), season))
		if err != nil {
			return err
		}

		var s catalog.Season
		if err := catalog.Decode(map[string]any(resp), &s); err != nil {
			return err
		}
		if s.SeasonNumber == 0 {
			s.SeasonNumber = season
		}

		return episodesMsg{show: show, season: &s}
	}
}

func (b *statefulBubble) loadHistory() tea.Cmd {
	return func() tea.Msg {
		entries, err := history.List()
		if err != nil {
			return err
		}
		return historyMsg(entries)
	}
}

// play suspends the UI while the player runs.
func (b *statefulBubble) play(name string, target playback.Target) tea.Cmd {
	d := b.options.Redirector.Descriptor(target)

	if b.options.SaveHistory {
		if err := history.Save(name, target, d); err != nil {
			log.Warn(err)
		}
	}

	cmd, err := open.Command(d.RelayedURL, b.options.Player)
	if err != nil {
		return func() tea.Msg { return err }
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return playedMsg{name: name, err: err}
	})
}

func (b *statefulBubble) openProviderPage(target playback.Target) tea.Cmd {
	providerURL := b.options.Redirector.ProviderURL(target)
	return func() tea.Msg {
		if err := open.Start(providerURL, ""); err != nil {
			return ui.Notification{Text: err.Error(), Level: ui.Error}
		}
		return ui.Notification{Text: "Opened " + providerURL, Level: ui.Info}
	}
}

func (b *statefulBubble) selectRelay(index int) tea.Cmd {
	if !b.options.Redirector.SelectRelay(index) {
		return ui.Notify(fmt.Sprintf("relay %d does not exist", index), ui.Error)
	}

	b.refreshRelays()
	_, host := b.options.Redirector.ActiveRelay()

	if b.options.OnRelaySelected != nil {
		if err := b.options.OnRelaySelected(index); err != nil {
			log.Warn(err)
			return ui.Notify("Using "+host+" for this session only: "+err.Error(), ui.Warning)
		}
	}

	return ui.Notify("Using relay "+host, ui.Success)
}

func (b *statefulBubble) refreshRelays() tea.Cmd {
	active, _ := b.options.Redirector.ActiveRelay()
	items := lo.Map(b.options.Redirector.Relays(), func(host string, i int) list.Item {
		return &listItem{internal: &relayItem{index: i, host: host, active: i == active}}
	})
	return b.relaysC.SetItems(items)
}

func titleItems(titles []*catalog.Title, highlight string) []list.Item {
	return lo.Map(titles, func(t *catalog.Title, _ int) list.Item {
		return &listItem{internal: t, highlight: highlight}
	})
}
