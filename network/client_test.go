package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trixio-cli/trixio/constant"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the User-Agent", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
		}))
		defer srv.Close()

		read := func(req *http.Request) string {
			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			return string(body)
		}

		Convey("The default agent is stamped", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			So(read(req), ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit agent is kept", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			req.Header.Set("User-Agent", "custom/1.0")
			So(read(req), ShouldEqual, "custom/1.0")
		})
	})

	Convey("TLSClient is a singleton", t, func() {
		So(TLSClient(), ShouldEqual, TLSClient())
	})
}
