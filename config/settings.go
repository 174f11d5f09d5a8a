package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/key"
)

// Settings is the configuration snapshot handed to the catalog client and the
// playback redirector. It is built once by Load and never mutated afterwards.
type Settings struct {
	APIKey           string
	APIBaseURL       string
	ImageBaseURL     string
	Language         string
	ProviderHost     string
	RelayHosts       []string
	ActiveRelayIndex int
}

// Load snapshots the current viper values into a validated Settings.
func Load() (*Settings, error) {
	s := &Settings{
		APIKey:           viper.GetString(key.CatalogAPIKey),
		APIBaseURL:       strings.TrimSuffix(viper.GetString(key.CatalogBaseURL), "/"),
		ImageBaseURL:     strings.TrimSuffix(viper.GetString(key.CatalogImageBaseURL), "/"),
		Language:         viper.GetString(key.CatalogLanguage),
		ProviderHost:     viper.GetString(key.PlaybackProvider),
		RelayHosts:       append([]string(nil), viper.GetStringSlice(key.PlaybackRelays)...),
		ActiveRelayIndex: viper.GetInt(key.PlaybackRelayIndex),
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return s, nil
}

// Validate reports the first setting that would make a facade unusable.
func (s *Settings) Validate() error {
	switch {
	case s.APIBaseURL == "":
		return errors.New(key.CatalogBaseURL + " is empty")
	case s.ImageBaseURL == "":
		return errors.New(key.CatalogImageBaseURL + " is empty")
	case s.ProviderHost == "":
		return errors.New(key.PlaybackProvider + " is empty")
	case len(s.RelayHosts) == 0:
		return errors.New(key.PlaybackRelays + " has no entries")
	}

	for i, h := range s.RelayHosts {
		if h == "" {
			return fmt.Errorf("%s[%d] is empty", key.PlaybackRelays, i)
		}
	}

	return nil
}
