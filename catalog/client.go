// Package catalog is the single funnel between trixio and the movie/TV metadata API.
//
// Every call goes through Client.Request, which injects the API key and
// language, issues one GET and classifies failures as TransportError,
// UpstreamError or DecodeError. With WithCache, a fresh stored copy of the
// same query is returned instead of the GET. Payloads are returned as decoded JSON without
// any shape validation; view models in title.go are opt-in helpers on top.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trixio-cli/trixio/config"
	"github.com/trixio-cli/trixio/internal/cache"
	"github.com/trixio-cli/trixio/log"
	"github.com/trixio-cli/trixio/network"
)

// Response is a decoded catalog payload.
type Response map[string]any

// Request is one parameterized catalog query.
type Request struct {
	Endpoint string
	Params   map[string]string
}

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the shared network client, typically with a test double.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// WithCache keeps successful responses in store for ttl. Entries are keyed
// on the endpoint and the full query, language and api_key included.
// A non-positive ttl disables caching.
func WithCache(store *cache.Store, ttl time.Duration) Option {
	return func(c *Client) {
		c.store = store
		c.ttl = ttl
	}
}

// Client issues catalog requests. It is safe for concurrent use; the only
// state it holds is the read-only settings snapshot and the optional cache.
type Client struct {
	settings *config.Settings
	doer     Doer

	store *cache.Store
	ttl   time.Duration
}

// New returns a client bound to settings.
func New(settings *config.Settings, options ...Option) *Client {
	c := &Client{
		settings: settings,
		doer:     network.Client,
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// Do is Request for a prepared Request value.
func (c *Client) Do(ctx context.Context, r Request) (Response, error) {
	return c.Request(ctx, r.Endpoint, r.Params)
}

// Request GETs endpoint with api_key and language merged into params.
// Keys present in params override the injected defaults.
func (c *Client) Request(ctx context.Context, endpoint string, params map[string]string) (Response, error) {
	query := url.Values{}
	query.Set("api_key", c.settings.APIKey)
	query.Set("language", c.settings.Language)
	for k, v := range params {
		query.Set(k, v)
	}

	if c.store == nil || c.ttl <= 0 {
		return c.get(ctx, endpoint, query)
	}

	key := cache.Key(endpoint, lo.MapValues(query, func(v []string, _ string) string {
		return strings.Join(v, ",")
	}))

	return cache.Remember(c.store, key, c.ttl, func() (Response, error) {
		return c.get(ctx, endpoint, query)
	})
}

// get issues the single GET behind Request.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (Response, error) {
	target := c.settings.APIBaseURL + "/" + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, c.fail(&TransportError{Endpoint: endpoint, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("catalog request %s", endpoint)
	resp, err := c.doer.Do(req)
	if err != nil {
		// *url.Error embeds the full URL, api_key included; keep only the cause.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, c.fail(&TransportError{Endpoint: endpoint, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(&UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
		})
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, c.fail(&DecodeError{Endpoint: endpoint, Err: err})
	}

	log.With(log.Fields{"endpoint": endpoint, "status": resp.StatusCode}, "catalog response")
	return out, nil
}

func (c *Client) fail(err error) error {
	log.Error(err)
	return err
}

// statusText strips the numeric prefix from resp.Status ("404 Not Found").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
