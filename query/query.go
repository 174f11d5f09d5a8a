// Package query remembers what was searched and offers completions for it.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/where"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	cacher = gache.New[map[string]*record](&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	})

	mu          sync.Mutex
	suggestions = make(map[string][]string)
)

// Normalize lowercases q and collapses inner whitespace.
func Normalize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

// Valid reports whether q is long enough to be worth sending upstream.
func Valid(q string) bool {
	return len([]rune(Normalize(q))) >= viper.GetInt(key.SearchMinLength)
}

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember bumps the rank of q by weight, adding it if unseen.
func Remember(q string, weight int) error {
	q = Normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	clear(suggestions)
	return cacher.Set(records)
}

// Forget drops q from the history.
func Forget(q string) error {
	q = Normalize(q)

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if _, ok := records[q]; !ok {
		return nil
	}

	delete(records, q)
	clear(suggestions)
	return cacher.Set(records)
}

// Suggest is the best completion for q.
func Suggest(q string) mo.Option[string] {
	if all := SuggestMany(q); len(all) > 0 {
		return mo.Some(all[0])
	}
	return mo.None[string]()
}

// SuggestMany lists remembered queries fuzzily matching q, most used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = Normalize(q)

	mu.Lock()
	defer mu.Unlock()

	if prev, ok := suggestions[q]; ok {
		return prev
	}

	matches := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return fuzzy.MatchFold(q, r.Query)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	result := lo.Map(matches, func(r *record, _ int) string {
		return r.Query
	})
	suggestions[q] = result
	return result
}
