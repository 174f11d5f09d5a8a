package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/history"
	"github.com/trixio-cli/trixio/icon"
	"github.com/trixio-cli/trixio/style"
	"github.com/trixio-cli/trixio/util"
)

type sectionItem struct {
	result catalog.SectionResult
	titles []*catalog.Title
}

type seasonItem struct {
	number   int
	episodes int
	name     string
}

type seasonEpisode struct {
	catalog.Episode
	season int
}

type relayItem struct {
	index  int
	host   string
	active bool
}

type listItem struct {
	internal any

	// highlight is the search term marked inside the title.
	highlight string
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *sectionItem:
		title = e.result.Section.Name
	case *catalog.Title:
		kind := icon.Get(icon.TV)
		if e.IsMovie() {
			kind = icon.Get(icon.Movie)
		}
		title = util.Highlight(e.DisplayName(), t.highlight, style.Mark)
		if kind != "" {
			title = kind + " " + title
		}
	case *seasonItem:
		title = e.name
	case *seasonEpisode:
		title = fmt.Sprintf("%d. %s", e.EpisodeNumber, e.Name)
	case *history.Entry:
		title = e.String()
	case *relayItem:
		title = e.host
		if e.active {
			title += " " + lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Relay))
		}
	default:
		title = t.FilterValue()
	}

	return
}

func (t *listItem) Description() (description string) {
	faint := lipgloss.NewStyle().Foreground(style.FaintColor)

	switch e := t.internal.(type) {
	case *sectionItem:
		if e.result.Err != nil {
			description = lipgloss.NewStyle().Foreground(style.ErrorColor).Render(e.result.Err.Error())
		} else {
			description = faint.Render(util.Quantify(len(e.titles), "title", "titles"))
		}
	case *catalog.Title:
		var parts []string

		if e.IsMovie() {
			parts = append(parts, faint.Render("Movie"))
		} else {
			parts = append(parts, faint.Render("Series"))
		}

		if year := e.Year(); year != "" {
			parts = append(parts, faint.Render(year))
		}

		if e.VoteAverage > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.WarningColor).Render(fmt.Sprintf("★ %.1f", e.VoteAverage)))
		}

		description = strings.Join(parts, " • ")
	case *seasonItem:
		description = faint.Render(util.Quantify(e.episodes, "episode", "episodes"))
	case *seasonEpisode:
		description = faint.Render(e.AirDate)
	case *history.Entry:
		description = faint.Render(e.WatchedAt.Format("2006-01-02 15:04"))
	case *relayItem:
		description = faint.Render(fmt.Sprintf("#%d", e.index))
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *sectionItem:
		return e.result.Section.Name
	case *catalog.Title:
		return e.DisplayName()
	case *seasonItem:
		return e.name
	case *seasonEpisode:
		return e.Name
	case *history.Entry:
		return e.Title
	case *relayItem:
		return e.host
	default:
		return ""
	}
}
