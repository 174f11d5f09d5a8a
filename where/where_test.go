package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/trixio-cli/trixio/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Given the path resolvers", t, func() {
		Convey("Directories exist after resolution", func() {
			for _, dir := range []func() string{Config, Cache, Logs, Temp} {
				path := dir()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			}
		})

		Convey("Files live under their parent directories", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
			So(filepath.Dir(Queries()), ShouldEqual, Cache())
			So(filepath.Dir(Responses()), ShouldEqual, Cache())
		})

		Convey("The config directory can be overridden", func() {
			custom := filepath.Join(os.TempDir(), "trixio-where-test")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(Logs(), ShouldEqual, filepath.Join(custom, "logs"))
		})
	})
}
