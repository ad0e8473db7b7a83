// Package httpx holds the HTTP plumbing shared by the remote API clients.
package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds connect, TLS handshake, response headers and the whole request.
	DefaultTimeout = 30 * time.Second
	userAgent      = "Vidda/1.0"

	// maxErrorBody caps how much of a non-2xx body is kept for the error message
	maxErrorBody = 512
)

// secretParams are redacted from logged URLs
var secretParams = []string{"api_key", "key"}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// DecodeError is returned when a response body cannot be decoded.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// URLError is returned when a request target cannot be built.
type URLError struct {
	Target string
	Err    error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid request url %q: %v", e.Target, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

// NewHTTPClient returns an http.Client with every phase bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          10,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Requester performs JSON GET requests against a single base URL.
type Requester struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Requester.
type Option func(*Requester)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Requester) { r.httpClient = c }
}

// WithRateLimit caps outgoing requests to perSecond with a burst of the same size.
// Zero or negative disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(r *Requester) {
		if perSecond <= 0 {
			r.limiter = nil
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Requester) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRequester creates a Requester for baseURL.
func NewRequester(baseURL string, opts ...Option) *Requester {
	r := &Requester{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: NewHTTPClient(DefaultTimeout),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BuildURL joins path onto the base URL and encodes query.
func (r *Requester) BuildURL(path string, query url.Values) (string, error) {
	target := r.baseURL + "/" + strings.TrimLeft(path, "/")
	u, err := url.Parse(target)
	if err != nil {
		return "", &URLError{Target: target, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &URLError{Target: target, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return "", &URLError{Target: target, Err: fmt.Errorf("missing host")}
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// GetJSON performs a GET request and decodes the JSON body into dest.
func (r *Requester) GetJSON(ctx context.Context, path string, query url.Values, dest any) error {
	reqURL, err := r.BuildURL(path, query)
	if err != nil {
		return err
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			// the limiter refuses waits that would outlive the deadline
			return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &URLError{Target: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	r.logger.Debug("api request", "url", redact(req.URL))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		r.logger.Warn("api request error", "status", resp.StatusCode, "url", redact(req.URL))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &DecodeError{URL: redact(req.URL), Err: err}
	}
	return nil
}

// redact returns u as a string with credential query parameters masked.
func redact(u *url.URL) string {
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	c := *u
	c.RawQuery = q.Encode()
	return c.String()
}
