package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequester_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/upcoming", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1}`))
	}))
	defer server.Close()

	r := NewRequester(server.URL + "/3/")
	var out struct {
		Page int `json:"page"`
	}
	err := r.GetJSON(context.Background(), "/movie/upcoming", url.Values{"api_key": {"secret"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
}

func TestRequester_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer server.Close()

	err := NewRequester(server.URL).GetJSON(context.Background(), "x", nil, &struct{}{})

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Equal(t, "maintenance", se.Body)
}

func TestRequester_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	err := NewRequester(server.URL).GetJSON(context.Background(), "x", nil, &struct{}{})

	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestRequester_BuildURL(t *testing.T) {
	_, err := NewRequester("not a url").BuildURL("/x", nil)
	var ue *URLError
	assert.ErrorAs(t, err, &ue)

	_, err = NewRequester("").BuildURL("/x", nil)
	assert.ErrorAs(t, err, &ue)

	got, err := NewRequester("https://api.example.com/3").BuildURL("search/movie", url.Values{"query": {"a b"}})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/3/search/movie?query=a+b", got)
}

func TestRequester_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	r := NewRequester(server.URL, WithHTTPClient(NewHTTPClient(20*time.Millisecond)))
	err := r.GetJSON(context.Background(), "slow", nil, &struct{}{})
	require.Error(t, err)

	var netErr interface{ Timeout() bool }
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}

func TestRequester_RateLimitHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	r := NewRequester(server.URL, WithRateLimit(0.001))
	require.NoError(t, r.GetJSON(context.Background(), "a", nil, &struct{}{}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := r.GetJSON(ctx, "b", nil, &struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedact(t *testing.T) {
	u, _ := url.Parse("https://x.test/search?q=a&key=secret")
	assert.NotContains(t, redact(u), "secret")
	assert.Contains(t, redact(u), "q=a")
}
