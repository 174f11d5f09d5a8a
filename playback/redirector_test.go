package playback

import (
	"sync"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/trixio-cli/trixio/config"
)

func newRedirector(active int) *Redirector {
	r, err := NewRedirector(&config.Settings{
		ProviderHost:     "vixsrc.to",
		RelayHosts:       []string{"cors-anywhere.com/", "corsproxy.io/", "api.allorigins.win/raw?url="},
		ActiveRelayIndex: active,
	})
	So(err, ShouldBeNil)
	return r
}

func TestProviderURL(t *testing.T) {
	Convey("Given a redirector", t, func() {
		r := newRedirector(1)

		Convey("Movies use the movie path", func() {
			So(r.ProviderURL(Movie("603")), ShouldEqual, "https://vixsrc.to/movie/603")
		})

		Convey("Episodes carry season and episode", func() {
			So(r.ProviderURL(Episode("1399", 1, 5)), ShouldEqual, "https://vixsrc.to/tv/1399/1/5")
		})

		Convey("Shows without an episode use the bare tv path", func() {
			So(r.ProviderURL(Show("1399")), ShouldEqual, "https://vixsrc.to/tv/1399")
			So(r.ProviderURL(Target{ContentID: "1399", Season: mo.Some(2)}), ShouldEqual, "https://vixsrc.to/tv/1399")
			So(r.ProviderURL(Episode("1399", 0, 5)), ShouldEqual, "https://vixsrc.to/tv/1399")
			So(r.ProviderURL(Episode("1399", 1, 0)), ShouldEqual, "https://vixsrc.to/tv/1399")
		})

		Convey("Season numbers are ignored for movies", func() {
			target := Target{ContentID: "603", IsMovie: true, Season: mo.Some(1), Episode: mo.Some(1)}
			So(r.ProviderURL(target), ShouldEqual, "https://vixsrc.to/movie/603")
		})

		Convey("Identifiers pass through verbatim", func() {
			So(r.ProviderURL(Movie("not a number")), ShouldEqual, "https://vixsrc.to/movie/not a number")
		})
	})
}

func TestApplyRelay(t *testing.T) {
	Convey("Given a redirector on the second relay", t, func() {
		r := newRedirector(1)
		raw := "https://vixsrc.to/movie/603"

		Convey("The active relay is prefixed", func() {
			So(r.ApplyRelay(raw), ShouldEqual, "https://corsproxy.io/https://vixsrc.to/movie/603")
		})

		Convey("Applying twice changes nothing", func() {
			once := r.ApplyRelay(raw)
			So(r.ApplyRelay(once), ShouldEqual, once)
		})

		Convey("A URL wrapped by another relay is left alone", func() {
			wrapped := "https://cors-anywhere.com/" + raw
			So(r.ApplyRelay(wrapped), ShouldEqual, wrapped)
		})

		Convey("A relay host anywhere in the URL suppresses rewriting", func() {
			odd := "https://vixsrc.to/movie/corsproxy.io/603"
			So(r.ApplyRelay(odd), ShouldEqual, odd)
		})
	})
}

func TestSelectRelay(t *testing.T) {
	Convey("Given a redirector with three relays", t, func() {
		r := newRedirector(1)

		Convey("Valid indexes switch the relay", func() {
			So(r.SelectRelay(2), ShouldBeTrue)
			index, host := r.ActiveRelay()
			So(index, ShouldEqual, 2)
			So(host, ShouldEqual, "api.allorigins.win/raw?url=")
			So(r.ApplyRelay("https://vixsrc.to/movie/1"), ShouldEqual, "https://api.allorigins.win/raw?url=https://vixsrc.to/movie/1")
		})

		Convey("Out-of-range indexes keep the previous relay", func() {
			So(r.SelectRelay(-1), ShouldBeFalse)
			So(r.SelectRelay(3), ShouldBeFalse)
			index, _ := r.ActiveRelay()
			So(index, ShouldEqual, 1)
		})

		Convey("Relays returns a copy", func() {
			relays := r.Relays()
			relays[0] = "mutated"
			So(r.Relays()[0], ShouldEqual, "cors-anywhere.com/")
		})

		Convey("Concurrent selection always leaves a valid index", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					r.SelectRelay(i % 4)
					_ = r.Descriptor(Movie("603"))
				}(i)
			}
			wg.Wait()

			index, _ := r.ActiveRelay()
			So(index, ShouldBeBetweenOrEqual, 0, 2)
		})
	})
}

func TestNewRedirector(t *testing.T) {
	Convey("Given an out-of-range initial index", t, func() {
		r := newRedirector(9)

		Convey("The first relay is used", func() {
			index, _ := r.ActiveRelay()
			So(index, ShouldEqual, 0)
		})
	})

	Convey("Given no relays", t, func() {
		_, err := NewRedirector(&config.Settings{ProviderHost: "vixsrc.to"})
		So(err, ShouldNotBeNil)
	})

	Convey("Given no provider", t, func() {
		_, err := NewRedirector(&config.Settings{RelayHosts: []string{"a/"}})
		So(err, ShouldNotBeNil)
	})
}

func TestDescriptor(t *testing.T) {
	Convey("Given an episode target", t, func() {
		r := newRedirector(0)
		d := r.Descriptor(Episode("1399", 1, 5))

		Convey("The descriptor composes both URLs", func() {
			So(d.ProviderURL, ShouldEqual, "https://vixsrc.to/tv/1399/1/5")
			So(d.RelayedURL, ShouldEqual, "https://cors-anywhere.com/https://vixsrc.to/tv/1399/1/5")
			So(d.MediaType, ShouldEqual, MediaType)
		})
	})
}
