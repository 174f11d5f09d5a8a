package catalog

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadSections(t *testing.T) {
	Convey("Given the home sections and a fetcher failing one of them", t, func() {
		sections := HomeSections()
		boom := errors.New("boom")

		fetch := func(_ context.Context, r Request) (Response, error) {
			if r.Endpoint == "tv/on_the_air" {
				return nil, boom
			}
			return Response{"endpoint": r.Endpoint}, nil
		}

		results := LoadSections(context.Background(), sections, fetch)

		Convey("Every section gets a result in order", func() {
			So(results, ShouldHaveLength, len(sections))
			for i, r := range results {
				So(r.Section.Name, ShouldEqual, sections[i].Name)
			}
		})

		Convey("Failures stay with their section", func() {
			So(results[0].Err, ShouldBeNil)
			So(results[0].Response["endpoint"], ShouldEqual, "trending/all/week")
			So(results[3].Err, ShouldEqual, boom)
			So(results[4].Err, ShouldBeNil)
		})
	})
}
