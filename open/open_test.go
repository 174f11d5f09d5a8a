package open

import (
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trixio-cli/trixio/constant"
)

func TestCommand(t *testing.T) {
	if runtime.GOOS != constant.Linux {
		t.Skip("launcher layout differs per platform")
	}

	Convey("Given a stream URL", t, func() {
		url := "https://relay/https://provider/movie/603"

		Convey("A named player receives the URL as its argument", func() {
			cmd, err := Command(url, "mpv")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"mpv", url})
		})

		Convey("No player falls back to xdg-open", func() {
			cmd, err := Command(url, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
		})
	})
}

func TestAvailable(t *testing.T) {
	Convey("Given player names", t, func() {
		So(Available(""), ShouldBeTrue)
		So(Available("definitely-not-a-real-player-binary"), ShouldBeFalse)
	})
}
