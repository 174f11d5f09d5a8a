// Package cache is a file-backed key/value store with per-entry expiry, used
// to keep catalog responses between runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/log"
)

type entry struct {
	Value   json.RawMessage `json:"value"`
	Expires time.Time       `json:"expires"`
}

type data struct {
	Entries map[string]*entry `json:"entries"`
}

// Store holds entries in a single JSON file. It is safe for concurrent use
// within one process.
type Store struct {
	internal *gache.Cache[*data]
	mu       sync.Mutex
	now      func() time.Time
}

// New opens (lazily) the store at path.
func New(path string) *Store {
	return &Store{
		internal: gache.New[*data](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		now: time.Now,
	}
}

// Key derives a stable identifier from an endpoint and its parameters.
// Parameter order does not matter.
func Key(endpoint string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(endpoint)))
	for _, name := range names {
		b.WriteString("&" + name + "=" + params[name])
	}

	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:])
}

func (s *Store) load() (*data, error) {
	d, _, err := s.internal.Get()
	if err != nil {
		return nil, err
	}
	if d == nil || d.Entries == nil {
		d = &data{Entries: make(map[string]*entry)}
	}
	return d, nil
}

// Set stores value under key for ttl. A non-positive ttl is a no-op.
func (s *Store) Set(key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}

	d.Entries[key] = &entry{Value: raw, Expires: s.now().Add(ttl)}
	return s.internal.Set(d)
}

// Get decodes the entry under key into target. Expired entries are dropped
// and reported as missing.
func (s *Store) Get(key string, target any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		log.Warn(err)
		return false
	}

	e, ok := d.Entries[key]
	if !ok {
		return false
	}

	if !s.now().Before(e.Expires) {
		delete(d.Entries, key)
		if err := s.internal.Set(d); err != nil {
			log.Warn(err)
		}
		return false
	}

	return json.Unmarshal(e.Value, target) == nil
}

// Remove deletes the entry under key, if any.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := d.Entries[key]; !ok {
		return nil
	}

	delete(d.Entries, key)
	return s.internal.Set(d)
}

// Clear drops every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.internal.Set(&data{Entries: make(map[string]*entry)})
}

// CollectGarbage removes expired entries and returns how many were dropped.
func (s *Store) CollectGarbage() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return 0, err
	}

	now := s.now()
	var removed int
	for k, e := range d.Entries {
		if !now.Before(e.Expires) {
			delete(d.Entries, k)
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}

	return removed, s.internal.Set(d)
}

// Len is the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return 0
	}
	return len(d.Entries)
}
