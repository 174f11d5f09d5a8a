package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given a fresh config directory", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every registered key has a value", func() {
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer swaps dots for underscores", func() {
			So(EnvKeyReplacer.Replace("catalog.api_key"), ShouldEqual, "catalog_api_key")
		})

		Convey("Field.Env carries the application prefix", func() {
			f := Default[key.CatalogLanguage]
			So(f.Env(), ShouldEqual, "TRIXIO_CATALOG_LANGUAGE")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given the factory defaults", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Load returns the original endpoints and relays", func() {
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.APIBaseURL, ShouldEqual, "https://api.themoviedb.org/3")
			So(s.ProviderHost, ShouldEqual, "vixsrc.to")
			So(s.RelayHosts, ShouldHaveLength, 3)
			So(s.ActiveRelayIndex, ShouldEqual, 1)
			So(s.Language, ShouldEqual, "it-IT")
		})

		Convey("Trailing slashes on base URLs are dropped", func() {
			viper.Set(key.CatalogBaseURL, "https://example.org/3/")
			defer viper.Set(key.CatalogBaseURL, Default[key.CatalogBaseURL].Value)

			s, err := Load()
			So(err, ShouldBeNil)
			So(s.APIBaseURL, ShouldEqual, "https://example.org/3")
		})

		Convey("An empty relay list is rejected", func() {
			viper.Set(key.PlaybackRelays, []string{})
			defer viper.Set(key.PlaybackRelays, Default[key.PlaybackRelays].Value)

			_, err := Load()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.PlaybackRelays)
		})
	})
}
