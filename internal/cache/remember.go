package cache

import (
	"time"

	"github.com/trixio-cli/trixio/log"
)

// Remember returns the value under key, or calls fetch and stores its result
// for ttl. Errors from fetch are returned as is and never cached.
func Remember[T any](s *Store, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	var cached T
	if s.Get(key, &cached) {
		log.Debugf("cache hit %s", key)
		return cached, nil
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	if err := s.Set(key, value, ttl); err != nil {
		log.Warn(err)
	}

	return value, nil
}
