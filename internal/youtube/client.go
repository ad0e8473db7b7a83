// Package youtube is a minimal client for the YouTube Data v3 search endpoint.
package youtube

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/mmcdole/vidda/internal/httpx"
)

// MaxResults is the number of hits requested per search.
const MaxResults = 5

// Client searches YouTube for videos.
type Client struct {
	apiKey string
	req    *httpx.Requester
	logger *slog.Logger
}

// NewClient creates a client for baseURL (e.g. https://www.googleapis.com/youtube/v3).
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

// Search runs a video search for query.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("q", query)
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(MaxResults))
	q.Set("key", c.apiKey)

	var resp SearchResponse
	if err := c.req.GetJSON(ctx, "/search", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
