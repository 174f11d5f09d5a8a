package cmd

import (
	"time"

	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/auth"
	"github.com/trixio-cli/trixio/catalog"
	"github.com/trixio-cli/trixio/config"
	"github.com/trixio-cli/trixio/internal/cache"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/playback"
	"github.com/trixio-cli/trixio/where"
)

// app bundles the facades built from the loaded configuration.
type app struct {
	settings   *config.Settings
	client     *catalog.Client
	redirector *playback.Redirector
	store      *cache.Store
}

func newApp() (*app, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	redirector, err := playback.NewRedirector(settings)
	if err != nil {
		return nil, err
	}

	store := cache.New(where.Responses())
	if n, err := store.CollectGarbage(); err != nil {
		log.Warn(err)
	} else if n > 0 {
		log.Infof("dropped %d expired responses", n)
	}

	ttl := time.Duration(viper.GetInt(key.CatalogCacheTTL)) * time.Second

	return &app{
		settings:   settings,
		client:     catalog.New(settings, catalog.WithCache(store, ttl)),
		redirector: redirector,
		store:      store,
	}, nil
}

func newGate() *auth.Gate {
	return auth.NewGate(
		viper.GetString(key.AccessPassword),
		time.Duration(viper.GetInt(key.AccessSessionTimeout))*time.Second,
	)
}

// persistRelay stores the relay choice so later runs start with it.
func persistRelay(index int) error {
	viper.Set(key.PlaybackRelayIndex, index)
	return writeConfig()
}

func writeConfig() error {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		return viper.SafeWriteConfig()
	default:
		return err
	}
}
