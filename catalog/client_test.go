package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trixio-cli/trixio/config"
)

const testKey = "secret-key"

func newSettings(base string) *config.Settings {
	return &config.Settings{
		APIKey:       testKey,
		APIBaseURL:   base,
		ImageBaseURL: "https://images.example/t/p",
		Language:     "it-IT",
		ProviderHost: "provider.example",
		RelayHosts:   []string{"relay.example/"},
	}
}

// upstream records the last request and answers with status and body.
type upstream struct {
	hits   atomic.Int32
	last   *url.URL
	status int
	body   string
}

func (u *upstream) start() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		u.last = r.URL
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		fmt.Fprint(w, u.body)
	}))
}

func TestRequest(t *testing.T) {
	Convey("Given a catalog upstream", t, func() {
		up := &upstream{status: http.StatusOK, body: `{"results":[{"id":1,"title":"A"}]}`}
		srv := up.start()
		defer srv.Close()

		client := New(newSettings(srv.URL), WithDoer(srv.Client()))
		ctx := context.Background()

		Convey("Credentials and language are injected", func() {
			resp, err := client.Request(ctx, "movie/popular", map[string]string{"page": "2"})
			So(err, ShouldBeNil)
			So(resp["results"], ShouldHaveLength, 1)
			So(up.last.Path, ShouldEqual, "/movie/popular")
			So(up.last.Query().Get("api_key"), ShouldEqual, testKey)
			So(up.last.Query().Get("language"), ShouldEqual, "it-IT")
			So(up.last.Query().Get("page"), ShouldEqual, "2")
			So(up.hits.Load(), ShouldEqual, 1)
		})

		Convey("Caller params override the injected defaults", func() {
			_, err := client.Request(ctx, "movie/popular", map[string]string{"language": "en-US"})
			So(err, ShouldBeNil)
			So(up.last.Query().Get("language"), ShouldEqual, "en-US")
		})

		Convey("A non-2xx status is an UpstreamError", func() {
			up.status = http.StatusNotFound
			up.body = `{"status_message":"not found"}`

			_, err := client.Request(ctx, "movie/0", nil)
			var upstreamErr *UpstreamError
			So(errors.As(err, &upstreamErr), ShouldBeTrue)
			So(upstreamErr.StatusCode, ShouldEqual, 404)
			So(upstreamErr.Status, ShouldEqual, "Not Found")
		})

		Convey("A 2xx status with a broken body is a DecodeError", func() {
			up.body = `<html>`

			_, err := client.Request(ctx, "movie/1", nil)
			var decodeErr *DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
		})

		Convey("A JSON array body is a DecodeError", func() {
			up.body = `[1,2,3]`

			_, err := client.Request(ctx, "movie/1", nil)
			var decodeErr *DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
		})

		Convey("Do forwards a prepared request", func() {
			_, err := client.Do(ctx, Request{Endpoint: "tv/popular", Params: map[string]string{"page": "3"}})
			So(err, ShouldBeNil)
			So(up.last.Path, ShouldEqual, "/tv/popular")
			So(up.last.Query().Get("page"), ShouldEqual, "3")
		})
	})

	Convey("Given an unreachable upstream", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		client := New(newSettings(base))

		Convey("The failure is a TransportError without the api key", func() {
			_, err := client.Request(context.Background(), "movie/popular", nil)
			var transportErr *TransportError
			So(errors.As(err, &transportErr), ShouldBeTrue)
			So(err.Error(), ShouldNotContainSubstring, testKey)
		})
	})

	Convey("Given a cancelled context", t, func() {
		up := &upstream{status: http.StatusOK, body: `{}`}
		srv := up.start()
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(newSettings(srv.URL)).Request(ctx, "movie/popular", nil)

		Convey("The cancellation surfaces as a TransportError", func() {
			var transportErr *TransportError
			So(errors.As(err, &transportErr), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestEndpoints(t *testing.T) {
	Convey("Given a catalog upstream", t, func() {
		up := &upstream{status: http.StatusOK, body: `{"results":[]}`}
		srv := up.start()
		defer srv.Close()

		client := New(newSettings(srv.URL))
		ctx := context.Background()

		Convey("Trending defaults to the weekly window", func() {
			_, err := client.Trending(ctx, "")
			So(err, ShouldBeNil)
			So(up.last.Path, ShouldEqual, "/trending/all/week")

			_, err = client.Trending(ctx, "day")
			So(err, ShouldBeNil)
			So(up.last.Path, ShouldEqual, "/trending/all/day")
		})

		Convey("Non-positive pages are sent as the first page", func() {
			_, err := client.NowPlaying(ctx, 0)
			So(err, ShouldBeNil)
			So(up.last.Path, ShouldEqual, "/movie/now_playing")
			So(up.last.Query().Get("page"), ShouldEqual, "1")

			_, err = client.PopularTV(ctx, -4)
			So(err, ShouldBeNil)
			So(up.last.Query().Get("page"), ShouldEqual, "1")
		})

		Convey("Paths are built per endpoint", func() {
			cases := []struct {
				call func() (Response, error)
				path string
			}{
				{func() (Response, error) { return client.PopularMovies(ctx, 1) }, "/movie/popular"},
				{func() (Response, error) { return client.MovieDetails(ctx, "550") }, "/movie/550"},
				{func() (Response, error) { return client.MovieCredits(ctx, "550") }, "/movie/550/credits"},
				{func() (Response, error) { return client.OnTheAir(ctx, 1) }, "/tv/on_the_air"},
				{func() (Response, error) { return client.TVDetails(ctx, "1399") }, "/tv/1399"},
				{func() (Response, error) { return client.TVSeason(ctx, "1399", 2) }, "/tv/1399/season/2"},
				{func() (Response, error) { return client.TVEpisode(ctx, "1399", 2, 5) }, "/tv/1399/season/2/episode/5"},
			}

			for _, c := range cases {
				_, err := c.call()
				So(err, ShouldBeNil)
				So(up.last.Path, ShouldEqual, c.path)
			}
		})

		Convey("Search sends the query and page", func() {
			_, err := client.Search(ctx, "dune", 3)
			So(err, ShouldBeNil)
			So(up.last.Path, ShouldEqual, "/search/multi")
			So(up.last.Query().Get("query"), ShouldEqual, "dune")
			So(up.last.Query().Get("page"), ShouldEqual, "3")
		})

		Convey("An empty search never reaches the network", func() {
			before := up.hits.Load()
			resp, err := client.Search(ctx, "", 1)
			So(err, ShouldBeNil)
			So(resp["results"], ShouldBeEmpty)
			resp, err = client.Search(ctx, "   ", 1)
			So(err, ShouldBeNil)
			So(resp["results"], ShouldBeEmpty)
			So(up.hits.Load(), ShouldEqual, before)
		})
	})
}

func TestImages(t *testing.T) {
	Convey("Given a client", t, func() {
		client := New(newSettings("https://api.example/3"))

		Convey("Posters use the default size", func() {
			So(client.ImageURL("/abc.jpg", ""), ShouldEqual, "https://images.example/t/p/w500/abc.jpg")
			So(client.ImageURL("/abc.jpg", "w185"), ShouldEqual, "https://images.example/t/p/w185/abc.jpg")
		})

		Convey("Backdrops use the large default size", func() {
			So(client.BackdropURL("/b.jpg", ""), ShouldEqual, "https://images.example/t/p/w1280/b.jpg")
		})

		Convey("Missing paths give placeholders", func() {
			So(client.ImageURL("", ""), ShouldEqual, PosterPlaceholder)
			So(client.BackdropURL("", "original"), ShouldEqual, BackdropPlaceholder)
		})
	})
}
