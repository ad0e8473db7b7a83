// Package controller holds the view-state machines behind each screen.
// Controllers own their goroutines: Close cancels in-flight work and waits for it.
package controller

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/observe"
)

// Status tags the variant of an Async value.
type Status int

const (
	StatusInitial Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "initial"
	}
}

// Async is the state of a single remote fetch. Data is only meaningful on
// success and Err only on error.
type Async[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Loading returns an Async in the loading state.
func Loading[T any]() Async[T] { return Async[T]{Status: StatusLoading} }

// Succeeded returns an Async holding data.
func Succeeded[T any](data T) Async[T] { return Async[T]{Status: StatusSuccess, Data: data} }

// Failed returns an Async holding err.
func Failed[T any](err error) Async[T] { return Async[T]{Status: StatusError, Err: err} }

// Message returns the user-facing error text, or "" when not in the error state.
func (a Async[T]) Message() string {
	if a.Status != StatusError {
		return ""
	}
	return domain.UserMessage(a.Err)
}

const (
	// DefaultDebounce is the quiet period before a typed query is searched.
	DefaultDebounce = 500 * time.Millisecond

	// DefaultSaveReset is how long a successful save is shown before returning to idle.
	DefaultSaveReset = 2 * time.Second
)

type options struct {
	logger     *slog.Logger
	debounce   time.Duration
	saveReset  time.Duration
	pickRandom func(n int) int
}

// Option configures a controller.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDebounce overrides the search debounce period.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithSaveReset overrides how long the save success indicator is shown.
func WithSaveReset(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.saveReset = d
		}
	}
}

// WithRandom overrides the hero picker. fn returns an index in [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(o *options) {
		if fn != nil {
			o.pickRandom = fn
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:     slog.Default(),
		debounce:   DefaultDebounce,
		saveReset:  DefaultSaveReset,
		pickRandom: rand.IntN,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// lifecycle scopes a controller's goroutines to a context.
type lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func (l *lifecycle) start(parent context.Context) {
	l.ctx, l.cancel = context.WithCancel(parent)
}

// spawn runs fn in a tracked goroutine unless the controller is closed.
func (l *lifecycle) spawn(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.ctx.Err() != nil {
		return false
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
	}()
	return true
}

// Close cancels all work and waits for it to finish.
func (l *lifecycle) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.cancel()
	l.wg.Wait()
}

// subscribe exposes v to a caller until the returned cancel is called or the controller closes.
func subscribe[T any](l *lifecycle, v *observe.Value[T]) (<-chan T, func()) {
	ctx, cancel := context.WithCancel(l.ctx)
	return v.Subscribe(ctx), cancel
}
