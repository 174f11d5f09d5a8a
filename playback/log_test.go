package playback

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func logged() string {
	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func TestRelayLogging(t *testing.T) {
	Convey("Given info logging", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "info")
		So(log.Setup(), ShouldBeNil)
		defer func() {
			viper.Set(key.LogsWrite, false)
			So(log.Setup(), ShouldBeNil)
		}()

		before := logged()

		Convey("Construction does not report a selection", func() {
			r := newRedirector(2)
			active, _ := r.ActiveRelay()
			So(active, ShouldEqual, 2)
			So(logged(), ShouldEqual, before)

			Convey("An explicit selection does", func() {
				So(r.SelectRelay(0), ShouldBeTrue)
				So(logged(), ShouldContainSubstring, "relay 0 selected")
			})
		})

		Convey("An out-of-range index warns and falls back", func() {
			r := newRedirector(7)
			active, _ := r.ActiveRelay()
			So(active, ShouldEqual, 0)
			So(logged(), ShouldContainSubstring, "relay index 7 out of range")
		})
	})
}
