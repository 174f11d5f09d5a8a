package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/where"
)

func init() {
	filesystem.SetMemMapFs()
}

type payload struct {
	Page    int      `json:"page"`
	Results []string `json:"results"`
}

func TestStore(t *testing.T) {
	Convey("Given an empty store with a controlled clock", t, func() {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		store := New(filepath.Join(where.Cache(), "store-test.json"))
		store.now = func() time.Time { return now }
		So(store.Clear(), ShouldBeNil)

		Convey("Stored values come back until they expire", func() {
			So(store.Set("k", payload{Page: 2, Results: []string{"a"}}, time.Minute), ShouldBeNil)

			var got payload
			So(store.Get("k", &got), ShouldBeTrue)
			So(got.Page, ShouldEqual, 2)
			So(got.Results, ShouldResemble, []string{"a"})

			now = now.Add(time.Minute)
			So(store.Get("k", &got), ShouldBeFalse)

			Convey("And the expired entry is gone", func() {
				So(store.Len(), ShouldEqual, 0)
			})
		})

		Convey("Missing keys report false", func() {
			var got payload
			So(store.Get("nope", &got), ShouldBeFalse)
		})

		Convey("A non-positive ttl stores nothing", func() {
			So(store.Set("k", 1, 0), ShouldBeNil)
			So(store.Len(), ShouldEqual, 0)
		})

		Convey("Remove deletes a single entry", func() {
			So(store.Set("a", 1, time.Hour), ShouldBeNil)
			So(store.Set("b", 2, time.Hour), ShouldBeNil)
			So(store.Remove("a"), ShouldBeNil)
			So(store.Remove("missing"), ShouldBeNil)

			var n int
			So(store.Get("a", &n), ShouldBeFalse)
			So(store.Get("b", &n), ShouldBeTrue)
			So(n, ShouldEqual, 2)
		})

		Convey("Garbage collection prunes only expired entries", func() {
			So(store.Set("short", 1, time.Second), ShouldBeNil)
			So(store.Set("long", 2, time.Hour), ShouldBeNil)
			now = now.Add(time.Minute)

			removed, err := store.CollectGarbage()
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 1)
			So(store.Len(), ShouldEqual, 1)
		})
	})
}

func TestKey(t *testing.T) {
	Convey("Given endpoint parameters", t, func() {
		a := Key("movie/popular", map[string]string{"page": "1", "language": "it-IT"})
		b := Key("movie/popular", map[string]string{"language": "it-IT", "page": "1"})
		c := Key("movie/popular", map[string]string{"page": "2", "language": "it-IT"})

		Convey("Order does not matter", func() {
			So(a, ShouldEqual, b)
		})

		Convey("Values do", func() {
			So(a, ShouldNotEqual, c)
		})

		Convey("Keys are hex sha256", func() {
			So(a, ShouldHaveLength, 64)
		})
	})
}

func TestRemember(t *testing.T) {
	Convey("Given an empty store", t, func() {
		store := New(filepath.Join(where.Cache(), "remember-test.json"))
		So(store.Clear(), ShouldBeNil)

		calls := 0
		fetch := func() (map[string]any, error) {
			calls++
			return map[string]any{"page": float64(1)}, nil
		}

		Convey("The second call is served from the store", func() {
			first, err := Remember(store, "k", time.Minute, fetch)
			So(err, ShouldBeNil)
			second, err := Remember(store, "k", time.Minute, fetch)
			So(err, ShouldBeNil)

			So(calls, ShouldEqual, 1)
			So(second, ShouldResemble, first)
		})

		Convey("Errors are not cached", func() {
			failing := func() (int, error) {
				calls++
				return 0, errors.New("upstream down")
			}

			_, err := Remember(store, "e", time.Minute, failing)
			So(err, ShouldNotBeNil)
			_, err = Remember(store, "e", time.Minute, failing)
			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 2)
		})
	})
}
