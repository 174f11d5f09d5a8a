package history

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/trixio-cli/trixio/playback"
)

// Entry is the last thing played for one title.
type Entry struct {
	ContentID string    `json:"content_id"`
	Title     string    `json:"title"`
	IsMovie   bool      `json:"is_movie"`
	Season    int       `json:"season,omitempty"`
	Episode   int       `json:"episode,omitempty"`
	URL       string    `json:"url"`
	WatchedAt time.Time `json:"watched_at"`
}

// encode keys entries per title, so a show keeps only its latest episode.
func (e *Entry) encode() string {
	if e.IsMovie {
		return "movie/" + e.ContentID
	}
	return "tv/" + e.ContentID
}

func (e *Entry) String() string {
	if e.IsMovie || e.Season == 0 {
		return e.Title
	}
	return fmt.Sprintf("%s S%02dE%02d", e.Title, e.Season, e.Episode)
}

// Target rebuilds the playback target so the entry can be resumed.
func (e *Entry) Target() playback.Target {
	t := playback.Target{ContentID: e.ContentID, IsMovie: e.IsMovie}
	if !e.IsMovie && e.Season != 0 && e.Episode != 0 {
		t.Season = mo.Some(e.Season)
		t.Episode = mo.Some(e.Episode)
	}
	return t
}

func newEntry(title string, target playback.Target, d playback.Descriptor, at time.Time) *Entry {
	return &Entry{
		ContentID: target.ContentID,
		Title:     title,
		IsMovie:   target.IsMovie,
		Season:    target.Season.OrEmpty(),
		Episode:   target.Episode.OrEmpty(),
		URL:       d.RelayedURL,
		WatchedAt: at,
	}
}
