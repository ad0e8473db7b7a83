// Package tmdb is a client for the TMDB v3 metadata API.
package tmdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/httpx"
)

// Client issues TMDB requests and returns raw wire records.
// It does not classify errors; callers get transport, status and decode errors as-is.
type Client struct {
	apiKey string
	req    *httpx.Requester
	logger *slog.Logger
}

// NewClient creates a TMDB client for baseURL (e.g. https://api.themoviedb.org/3).
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...httpx.Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]httpx.Option{httpx.WithLogger(logger)}, opts...)
	return &Client{
		apiKey: apiKey,
		req:    httpx.NewRequester(baseURL, opts...),
		logger: logger,
	}
}

func (c *Client) params() url.Values {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	return q
}

func (c *Client) getPage(ctx context.Context, path string, query url.Values) (*Page, error) {
	var page Page
	if err := c.req.GetJSON(ctx, path, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Trending returns today's trending titles for media ("movie" or "tv").
func (c *Client) Trending(ctx context.Context, media domain.MediaKind) (*Page, error) {
	return c.getPage(ctx, fmt.Sprintf("/trending/%s/day", media), c.params())
}

// TopRated returns the top rated titles for media.
func (c *Client) TopRated(ctx context.Context, media domain.MediaKind) (*Page, error) {
	return c.getPage(ctx, fmt.Sprintf("/%s/top_rated", media), c.params())
}

// Upcoming returns upcoming movies.
func (c *Client) Upcoming(ctx context.Context) (*Page, error) {
	return c.getPage(ctx, "/movie/upcoming", c.params())
}

// Search performs a free-text search for media.
func (c *Client) Search(ctx context.Context, media domain.MediaKind, query string) (*Page, error) {
	q := c.params()
	q.Set("query", query)
	return c.getPage(ctx, fmt.Sprintf("/search/%s", media), q)
}

// Details returns a single title.
func (c *Client) Details(ctx context.Context, media domain.MediaKind, id int) (*Result, error) {
	var r Result
	path := fmt.Sprintf("/%s/%s", media, strconv.Itoa(id))
	if err := c.req.GetJSON(ctx, path, c.params(), &r); err != nil {
		return nil, err
	}
	return &r, nil
}
