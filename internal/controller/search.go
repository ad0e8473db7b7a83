package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/observe"
)

// SearchState is what the search screen renders.
type SearchState struct {
	Async[[]domain.Title]
	Kind  domain.MediaKind
	Query string // query of the fetch the results belong to
}

// Search runs debounced free-text searches. An empty query shows trending titles.
type Search struct {
	lifecycle
	repo     domain.TitleRepository
	logger   *slog.Logger
	debounce time.Duration

	mu        sync.Mutex
	kind      domain.MediaKind
	latest    string // most recent input, debounced or not
	last      string // last value that survived the debounce
	hasLast   bool
	timer     *time.Timer
	pending   uint64 // debounce generation
	seq       uint64 // fetch generation
	cancelRun context.CancelFunc

	state *observe.Value[SearchState]
}

// NewSearch creates a Search controller bound to ctx, searching movies.
func NewSearch(ctx context.Context, repo domain.TitleRepository, opts ...Option) *Search {
	o := buildOptions(opts)
	s := &Search{
		repo:     repo,
		logger:   o.logger,
		debounce: o.debounce,
		kind:     domain.MediaKindMovie,
		state:    observe.NewValue(SearchState{Kind: domain.MediaKindMovie}),
	}
	s.start(ctx)
	return s
}

// State returns the current state.
func (s *Search) State() SearchState { return s.state.Get() }

// Subscribe returns a channel of state updates and a function to stop them.
func (s *Search) Subscribe() (<-chan SearchState, func()) { return subscribe(&s.lifecycle, s.state) }

// Start feeds the initial empty query so trending titles show after the debounce.
func (s *Search) Start() { s.SetQuery("") }

// Kind returns the media kind being searched.
func (s *Search) Kind() domain.MediaKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

// SetQuery records new input. The fetch fires once the input has been quiet
// for the debounce period, unless it equals the previous debounced value.
func (s *Search) SetQuery(q string) {
	q = strings.TrimSpace(q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	s.latest = q
	s.pending++
	gen := s.pending
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.fire(gen, q) })
}

// ToggleKind switches between movies and TV and immediately refetches the latest query.
func (s *Search) ToggleKind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	s.kind = s.kind.Other()
	s.state.Update(func(st SearchState) SearchState {
		st.Kind = s.kind
		return st
	})
	s.runLocked(s.latest)
}

func (s *Search) fire(gen uint64, q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.pending || s.ctx.Err() != nil {
		return
	}
	if s.hasLast && q == s.last {
		return
	}
	s.last, s.hasLast = q, true
	s.runLocked(q)
}

// runLocked supersedes any in-flight fetch with one for q. Callers hold s.mu.
func (s *Search) runLocked(q string) {
	if s.cancelRun != nil {
		s.cancelRun()
	}
	s.seq++
	seq, kind := s.seq, s.kind
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancelRun = cancel

	s.state.Set(SearchState{Async: Loading[[]domain.Title](), Kind: kind, Query: q})

	s.spawn(func() {
		defer cancel()
		var (
			titles []domain.Title
			err    error
		)
		if q == "" {
			titles, err = s.repo.Trending(ctx, kind)
		} else {
			titles, err = s.repo.Search(ctx, kind, q)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.seq || ctx.Err() != nil {
			return
		}
		next := SearchState{Kind: kind, Query: q}
		if err != nil {
			s.logger.Warn("search failed", "query", q, "kind", kind.String(), "error", err)
			next.Async = Failed[[]domain.Title](err)
		} else {
			next.Async = Succeeded(titles)
		}
		s.state.Set(next)
	})
}

// Close stops the debounce timer, cancels any fetch and waits for it.
func (s *Search) Close() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	s.lifecycle.Close()
}
