package catalog

import (
	"context"
	"sync"
)

// Section is one row of the home page.
type Section struct {
	Name    string
	Request Request
}

// HomeSections are the rows shown on start, in display order.
func HomeSections() []Section {
	return []Section{
		{Name: "Trending this week", Request: TrendingRequest(DefaultTimeWindow)},
		{Name: "Now playing", Request: NowPlayingRequest(1)},
		{Name: "Popular movies", Request: PopularMoviesRequest(1)},
		{Name: "On the air", Request: OnTheAirRequest(1)},
		{Name: "Popular TV", Request: PopularTVRequest(1)},
	}
}

// Fetcher resolves a Request. Client.Do is one; a caching wrapper is another.
type Fetcher func(ctx context.Context, r Request) (Response, error)

// SectionResult pairs a section with its outcome.
type SectionResult struct {
	Section  Section
	Response Response
	Err      error
}

// LoadSections fetches every section concurrently. One failing section does
// not affect the others; results keep the order of sections.
func LoadSections(ctx context.Context, sections []Section, fetch Fetcher) []SectionResult {
	results := make([]SectionResult, len(sections))

	var wg sync.WaitGroup
	wg.Add(len(sections))
	for i, s := range sections {
		go func(i int, s Section) {
			defer wg.Done()
			resp, err := fetch(ctx, s.Request)
			results[i] = SectionResult{Section: s, Response: resp, Err: err}
		}(i, s)
	}

	wg.Wait()
	return results
}
