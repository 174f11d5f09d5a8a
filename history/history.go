// Package history keeps a record of what was played so it can be resumed.
package history

import (
	"sort"
	"time"

	"github.com/metafates/gache"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/playback"
	"github.com/trixio-cli/trixio/where"
)

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var now = time.Now

// Get returns every entry keyed by title.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// List returns entries most recent first.
func List() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(saved))
	for _, e := range saved {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].WatchedAt.After(entries[j].WatchedAt)
	})

	return entries, nil
}

// Save records that target, titled title, was resolved to d.
func Save(title string, target playback.Target, d playback.Descriptor) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	e := newEntry(title, target, d, now())
	saved[e.encode()] = e

	return cacher.Set(saved)
}

// Remove deletes the entry for e's title.
func Remove(e *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, e.encode())
	return cacher.Set(saved)
}

// Clear drops the whole history.
func Clear() error {
	return cacher.Set(make(map[string]*Entry))
}
