package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/config"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/playback"
)

func init() {
	filesystem.SetMemMapFs()
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func fakeFetch(_ context.Context, r catalog.Request) (catalog.Response, error) {
	switch r.Endpoint {
	case "search/multi":
		return catalog.Response{"results": []any{
			map[string]any{"id": float64(438631), "title": "Dune", "media_type": "movie"},
			map[string]any{"id": float64(1399), "name": "Game of Thrones", "media_type": "tv"},
			map[string]any{"id": float64(9), "name": "Someone", "media_type": "person"},
		}}, nil
	case "tv/1399":
		return catalog.Response{"id": float64(1399), "name": "Game of Thrones", "seasons": []any{
			map[string]any{"season_number": float64(0), "name": "Specials"},
			map[string]any{"season_number": float64(1), "name": "Season 1", "episode_count": float64(10)},
		}}, nil
	case "tv/1399/season/1":
		return catalog.Response{"season_number": float64(1), "name": "Season 1", "episodes": []any{
			map[string]any{"episode_number": float64(1), "name": "Winter Is Coming"},
		}}, nil
	case "tv/on_the_air":
		return nil, errors.New("upstream down")
	}
	return catalog.Response{"results": []any{
		map[string]any{"id": float64(603), "title": "The Matrix", "media_type": "movie"},
	}}, nil
}

func newTestBubble(persisted *int) *statefulBubble {
	r, err := playback.NewRedirector(&config.Settings{
		ProviderHost: "vixsrc.to",
		RelayHosts:   []string{"a.example/", "b.example/"},
	})
	So(err, ShouldBeNil)

	return newBubble(context.Background(), &Options{
		Redirector: r,
		Fetch:      fakeFetch,
		OnRelaySelected: func(index int) error {
			*persisted = index
			return nil
		},
	})
}

func TestBrowsing(t *testing.T) {
	Convey("Given a freshly started browser", t, func() {
		viper.Set(key.SearchMinLength, 2)
		persisted := -1
		b := newTestBubble(&persisted)
		b.Init()
		So(b.loading, ShouldBeTrue)

		b.Update(b.loadHome()())

		Convey("The home sections are listed", func() {
			So(b.state, ShouldEqual, homeState)
			So(b.homeC.Items(), ShouldHaveLength, len(catalog.HomeSections()))
		})

		Convey("A failed section reports its error", func() {
			failed := b.homeC.Items()[3].(*listItem).internal.(*sectionItem)
			So(failed.result.Err, ShouldNotBeNil)
		})

		Convey("Opening a section lists its titles", func() {
			b.Update(enter)
			So(b.state, ShouldEqual, titlesState)
			So(b.titlesC.Items(), ShouldHaveLength, 1)

			Convey("And going back returns home", func() {
				b.Update(esc)
				So(b.state, ShouldEqual, homeState)
			})
		})

		Convey("Searching shows titles but not people", func() {
			b.enterSearch()
			b.inputC.SetValue("got")
			b.Update(enter)
			So(b.state, ShouldEqual, loadingState)

			b.Update(b.searchTitles("got")())
			So(b.state, ShouldEqual, titlesState)
			So(b.titlesC.Items(), ShouldHaveLength, 2)
			So(b.lastQuery, ShouldEqual, "got")
		})

		Convey("Too short a query is not sent", func() {
			b.enterSearch()
			b.inputC.SetValue("g")
			b.Update(enter)
			So(b.state, ShouldEqual, searchState)
		})

		Convey("A show drills down to its episodes", func() {
			show := &catalog.Title{ID: 1399, Name: "Game of Thrones", MediaType: "tv"}
			b.startLoading("")
			b.Update(b.loadSeasons(show)())

			So(b.state, ShouldEqual, seasonsState)
			So(b.seasonsC.Items(), ShouldHaveLength, 1)

			b.Update(enter)
			So(b.state, ShouldEqual, loadingState)
			b.Update(b.loadEpisodes(b.selectedTitle, 1)())

			So(b.state, ShouldEqual, episodesState)
			name, target, ok := b.selectedTarget()
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "Game of Thrones")
			So(target, ShouldResemble, playback.Episode("1399", 1, 1))

			Convey("And back walks up one level at a time", func() {
				b.Update(esc)
				So(b.state, ShouldEqual, seasonsState)
			})
		})

		Convey("Results arriving after leaving the loading view are dropped", func() {
			b.startLoading("")
			b.Update(esc)
			So(b.state, ShouldEqual, homeState)

			b.Update(b.searchTitles("dune")())
			So(b.state, ShouldEqual, homeState)
		})

		Convey("Errors are shown and can be dismissed", func() {
			b.Update(errors.New("boom"))
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "boom")

			b.Update(esc)
			So(b.state, ShouldEqual, homeState)
		})

		Convey("Selecting a relay switches and persists it", func() {
			b.newState(relaysState)
			b.refreshRelays()
			So(b.relaysC.Items(), ShouldHaveLength, 2)

			So(b.selectRelay(1), ShouldNotBeNil)
			index, _ := b.options.Redirector.ActiveRelay()
			So(index, ShouldEqual, 1)
			So(persisted, ShouldEqual, 1)

			Convey("An invalid relay changes nothing", func() {
				b.selectRelay(7)
				index, _ := b.options.Redirector.ActiveRelay()
				So(index, ShouldEqual, 1)
				So(persisted, ShouldEqual, 1)
			})
		})
	})
}

func TestBlankSearch(t *testing.T) {
	Convey("Given no minimum query length", t, func() {
		viper.Set(key.SearchMinLength, 0)
		defer viper.Set(key.SearchMinLength, 2)

		var calls int
		persisted := -1
		b := newTestBubble(&persisted)
		b.options.Fetch = func(ctx context.Context, r catalog.Request) (catalog.Response, error) {
			calls++
			return fakeFetch(ctx, r)
		}

		Convey("A blank query yields no titles without calling the catalog", func() {
			msg, ok := b.searchTitles(" ")().(titlesMsg)
			So(ok, ShouldBeTrue)
			So(msg.titles, ShouldBeEmpty)
			So(calls, ShouldEqual, 0)
		})
	})
}
