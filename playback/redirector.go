// Package playback turns a content identifier into a playable stream address
// routed through a CORS relay.
package playback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/mo"
	"github.com/trixio-cli/trixio/config"
	"github.com/trixio-cli/trixio/log"
)

// MediaType is the stream format every Descriptor advertises.
const MediaType = "application/x-mpegURL"

// Target identifies what to play. Season and Episode only matter for shows.
type Target struct {
	ContentID string
	IsMovie   bool
	Season    mo.Option[int]
	Episode   mo.Option[int]
}

// Movie is a Target for a film.
func Movie(id string) Target {
	return Target{ContentID: id, IsMovie: true}
}

// Episode is a Target for one episode of a show.
func Episode(id string, season, episode int) Target {
	return Target{
		ContentID: id,
		Season:    mo.Some(season),
		Episode:   mo.Some(episode),
	}
}

// Show is a Target for a show without a specific episode.
func Show(id string) Target {
	return Target{ContentID: id}
}

// Descriptor is everything a player needs to start a stream.
type Descriptor struct {
	ProviderURL string `json:"provider_url" jsonschema:"description=Unrelayed provider page"`
	RelayedURL  string `json:"url" jsonschema:"description=Address handed to the player"`
	MediaType   string `json:"type" jsonschema:"enum=application/x-mpegURL"`
}

// Redirector builds provider URLs and routes them through the active relay.
// The relay list is fixed at construction; only the active index changes.
type Redirector struct {
	provider string
	relays   []string

	mu     sync.RWMutex
	active int
}

// NewRedirector copies the provider and relay list out of settings. An
// out-of-range ActiveRelayIndex falls back to the first relay.
func NewRedirector(settings *config.Settings) (*Redirector, error) {
	if settings.ProviderHost == "" {
		return nil, errors.New("playback: provider host is empty")
	}
	if len(settings.RelayHosts) == 0 {
		return nil, errors.New("playback: relay list is empty")
	}

	r := &Redirector{
		provider: settings.ProviderHost,
		relays:   append([]string(nil), settings.RelayHosts...),
	}

	if i := settings.ActiveRelayIndex; i >= 0 && i < len(r.relays) {
		r.active = i
	} else {
		log.Warnf("relay index %d out of range, using 0", i)
	}

	return r, nil
}

// ProviderURL is https://{provider}/movie/{id} for films and
// https://{provider}/tv/{id}[/{season}/{episode}] for shows. The episode
// suffix is added only when both numbers are present and non-zero.
func (r *Redirector) ProviderURL(t Target) string {
	if t.IsMovie {
		return fmt.Sprintf("https://%s/movie/%s", r.provider, t.ContentID)
	}

	base := fmt.Sprintf("https://%s/tv/%s", r.provider, t.ContentID)

	season, hasSeason := t.Season.Get()
	episode, hasEpisode := t.Episode.Get()
	if hasSeason && hasEpisode && season != 0 && episode != 0 {
		return base + "/" + strconv.Itoa(season) + "/" + strconv.Itoa(episode)
	}

	return base
}

// ApplyRelay prefixes rawURL with the active relay. A URL that already
// mentions any configured relay is returned untouched, so the call is
// idempotent.
func (r *Redirector) ApplyRelay(rawURL string) string {
	for _, relay := range r.relays {
		if strings.Contains(rawURL, relay) {
			return rawURL
		}
	}

	_, relay := r.ActiveRelay()
	return "https://" + relay + rawURL
}

// SelectRelay makes relay i active. Out-of-range indexes leave the current
// relay in place and report false.
func (r *Redirector) SelectRelay(i int) bool {
	if i < 0 || i >= len(r.relays) {
		return false
	}

	r.mu.Lock()
	r.active = i
	r.mu.Unlock()

	log.Infof("relay %d selected: %s", i, r.relays[i])
	return true
}

// ActiveRelay returns the index and host of the relay in use.
func (r *Redirector) ActiveRelay() (int, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active, r.relays[r.active]
}

// Relays is a copy of the configured relay list.
func (r *Redirector) Relays() []string {
	return append([]string(nil), r.relays...)
}

// Descriptor resolves t into a relayed stream address. The relay is read
// once, so a concurrent SelectRelay never yields a mixed result.
func (r *Redirector) Descriptor(t Target) Descriptor {
	providerURL := r.ProviderURL(t)

	d := Descriptor{
		ProviderURL: providerURL,
		RelayedURL:  r.ApplyRelay(providerURL),
		MediaType:   MediaType,
	}

	log.With(log.Fields{"content": t.ContentID, "movie": t.IsMovie, "url": d.RelayedURL}, "stream resolved")
	return d
}
