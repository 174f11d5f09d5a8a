package catalog

import (
	"context"
	"strconv"
	"strings"
)

// DefaultTimeWindow is the trending window used when none is given.
const DefaultTimeWindow = "week"

func pageParams(page int) map[string]string {
	if page <= 0 {
		page = 1
	}
	return map[string]string{"page": strconv.Itoa(page)}
}

// TrendingRequest lists trending titles of every media type over window
// ("day" or "week"). An empty window means DefaultTimeWindow.
func TrendingRequest(window string) Request {
	if window == "" {
		window = DefaultTimeWindow
	}
	return Request{Endpoint: "trending/all/" + window}
}

// NowPlayingRequest lists movies in theatres. A page <= 0 means the first page.
func NowPlayingRequest(page int) Request {
	return Request{Endpoint: "movie/now_playing", Params: pageParams(page)}
}

func PopularMoviesRequest(page int) Request {
	return Request{Endpoint: "movie/popular", Params: pageParams(page)}
}

func MovieDetailsRequest(id string) Request {
	return Request{Endpoint: "movie/" + id}
}

func MovieCreditsRequest(id string) Request {
	return Request{Endpoint: "movie/" + id + "/credits"}
}

// OnTheAirRequest lists shows with an episode airing in the next seven days.
func OnTheAirRequest(page int) Request {
	return Request{Endpoint: "tv/on_the_air", Params: pageParams(page)}
}

func PopularTVRequest(page int) Request {
	return Request{Endpoint: "tv/popular", Params: pageParams(page)}
}

func TVDetailsRequest(id string) Request {
	return Request{Endpoint: "tv/" + id}
}

func TVSeasonRequest(id string, season int) Request {
	return Request{Endpoint: "tv/" + id + "/season/" + strconv.Itoa(season)}
}

func TVEpisodeRequest(id string, season, episode int) Request {
	return Request{Endpoint: "tv/" + id + "/season/" + strconv.Itoa(season) + "/episode/" + strconv.Itoa(episode)}
}

// SearchRequest queries movies, shows and people at once.
func SearchRequest(query string, page int) Request {
	params := pageParams(page)
	params["query"] = query
	return Request{Endpoint: "search/multi", Params: params}
}

func (c *Client) Trending(ctx context.Context, window string) (Response, error) {
	return c.Do(ctx, TrendingRequest(window))
}

func (c *Client) NowPlaying(ctx context.Context, page int) (Response, error) {
	return c.Do(ctx, NowPlayingRequest(page))
}

func (c *Client) PopularMovies(ctx context.Context, page int) (Response, error) {
	return c.Do(ctx, PopularMoviesRequest(page))
}

func (c *Client) MovieDetails(ctx context.Context, id string) (Response, error) {
	return c.Do(ctx, MovieDetailsRequest(id))
}

func (c *Client) MovieCredits(ctx context.Context, id string) (Response, error) {
	return c.Do(ctx, MovieCreditsRequest(id))
}

func (c *Client) OnTheAir(ctx context.Context, page int) (Response, error) {
	return c.Do(ctx, OnTheAirRequest(page))
}

func (c *Client) PopularTV(ctx context.Context, page int) (Response, error) {
	return c.Do(ctx, PopularTVRequest(page))
}

func (c *Client) TVDetails(ctx context.Context, id string) (Response, error) {
	return c.Do(ctx, TVDetailsRequest(id))
}

func (c *Client) TVSeason(ctx context.Context, id string, season int) (Response, error) {
	return c.Do(ctx, TVSeasonRequest(id, season))
}

func (c *Client) TVEpisode(ctx context.Context, id string, season, episode int) (Response, error) {
	return c.Do(ctx, TVEpisodeRequest(id, season, episode))
}

// Search is SearchRequest, except that a blank query returns an empty
// result set without touching the network.
func (c *Client) Search(ctx context.Context, query string, page int) (Response, error) {
	return SearchWith(ctx, c.Do, query, page)
}

// SearchWith runs a search through fetch. fetch is not called for a blank query.
func SearchWith(ctx context.Context, fetch Fetcher, query string, page int) (Response, error) {
	if strings.TrimSpace(query) == "" {
		return EmptyResults(), nil
	}
	return fetch(ctx, SearchRequest(query, page))
}

// EmptyResults is the payload returned for searches that were never sent.
func EmptyResults() Response {
	return Response{"results": []any{}}
}
