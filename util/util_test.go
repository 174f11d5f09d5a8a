package util

import (
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trixio-cli/trixio/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "result", "results"), ShouldEqual, "1 result")
		So(Quantify(0, "result", "results"), ShouldEqual, "0 results")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("serie"), ShouldEqual, "Serie")
		So(Capitalize("època"), ShouldEqual, "Època")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		dir := filepath.Join("/tmp", "trixio-delete")
		So(fs.MkdirAll(dir, 0755), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0644), ShouldBeNil)

		Convey("Delete removes the tree", func() {
			So(Delete(dir), ShouldBeNil)
			exists, _ := fs.Exists(dir)
			So(exists, ShouldBeFalse)
		})

		Convey("Delete of a missing path fails", func() {
			So(Delete("/does/not/exist"), ShouldNotBeNil)
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Given titles", t, func() {
		type title struct{ name, overview string }
		items := []title{
			{"The Matrix", "a hacker learns the truth"},
			{"Dune", "spice and sand"},
			{"Heat", "a crew of thieves"},
		}
		fields := func(t title) []string { return []string{t.name, t.overview} }

		So(Filter(items, "", fields), ShouldHaveLength, 3)
		So(Filter(items, "MATRIX", fields), ShouldHaveLength, 1)
		So(Filter(items, "sand", fields)[0].name, ShouldEqual, "Dune")
		So(Filter(items, "zzz", fields), ShouldBeEmpty)
	})
}

func TestHighlight(t *testing.T) {
	Convey("Given a marker", t, func() {
		mark := func(s string) string { return "[" + s + "]" }

		So(Highlight("The Matrix Reloaded", "matrix", mark), ShouldEqual, "The [Matrix] Reloaded")
		So(Highlight("na na NA", "na", mark), ShouldEqual, "[na] [na] [NA]")
		So(Highlight("C++ (1999)", "(1999)", mark), ShouldEqual, "C++ [(1999)]")
		So(Highlight("anything", "", strings.ToUpper), ShouldEqual, "anything")
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
