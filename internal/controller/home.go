package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/observe"
)

// Phase is the home feed's coarse state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
)

// HomeState is what the home screen renders.
type HomeState struct {
	Phase          Phase
	TrendingMovies []domain.Title
	TrendingTV     []domain.Title
	TopRatedMovies []domain.Title
	TopRatedTV     []domain.Title
	Hero           *domain.Title
	Err            error // set when trending movies failed or a fetch panicked
}

// Home loads the four home feed lists and picks a hero title.
type Home struct {
	lifecycle
	repo   domain.TitleRepository
	logger *slog.Logger
	pick   func(n int) int

	state *observe.Value[HomeState]
}

// NewHome creates a Home controller bound to ctx.
func NewHome(ctx context.Context, repo domain.TitleRepository, opts ...Option) *Home {
	o := buildOptions(opts)
	h := &Home{
		repo:   repo,
		logger: o.logger,
		pick:   o.pickRandom,
		state:  observe.NewValue(HomeState{}),
	}
	h.start(ctx)
	return h
}

// State returns the current state.
func (h *Home) State() HomeState { return h.state.Get() }

// Subscribe returns a channel of state updates and a function to stop them.
func (h *Home) Subscribe() (<-chan HomeState, func()) { return subscribe(&h.lifecycle, h.state) }

// Load fetches the feed on first activation. Later calls do nothing.
func (h *Home) Load() {
	h.begin(func(s HomeState) bool { return s.Phase == PhaseIdle })
}

// Retry refetches everything, but only while trending movies are still empty
// and no load is running.
func (h *Home) Retry() {
	h.begin(func(s HomeState) bool {
		return s.Phase != PhaseLoading && len(s.TrendingMovies) == 0
	})
}

func (h *Home) begin(allowed func(HomeState) bool) {
	started := false
	h.state.Update(func(s HomeState) HomeState {
		if !allowed(s) {
			return s
		}
		started = true
		s.Phase = PhaseLoading
		s.Err = nil
		return s
	})
	if !started {
		return
	}
	if !h.spawn(h.load) {
		h.state.Update(func(s HomeState) HomeState {
			s.Phase = PhaseIdle
			return s
		})
	}
}

func (h *Home) load() {
	var (
		mu   sync.Mutex
		next = HomeState{Phase: PhaseReady}
		wg   conc.WaitGroup
	)

	fetch := func(name string, slot *[]domain.Title, call func(ctx context.Context) ([]domain.Title, error)) {
		wg.Go(func() {
			titles, err := call(h.ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				h.logger.Warn("home feed list failed", "list", name, "error", err)
				if slot == &next.TrendingMovies {
					next.Err = err
				}
				titles = nil
			}
			*slot = titles
		})
	}

	fetch("trending_movies", &next.TrendingMovies, func(ctx context.Context) ([]domain.Title, error) {
		return h.repo.Trending(ctx, domain.MediaKindMovie)
	})
	fetch("trending_tv", &next.TrendingTV, func(ctx context.Context) ([]domain.Title, error) {
		return h.repo.Trending(ctx, domain.MediaKindTV)
	})
	fetch("top_rated_movies", &next.TopRatedMovies, func(ctx context.Context) ([]domain.Title, error) {
		return h.repo.TopRated(ctx, domain.MediaKindMovie)
	})
	fetch("top_rated_tv", &next.TopRatedTV, func(ctx context.Context) ([]domain.Title, error) {
		return h.repo.TopRated(ctx, domain.MediaKindTV)
	})

	if r := wg.WaitAndRecover(); r != nil {
		h.logger.Error("home feed panicked", "panic", r.String())
		next.Err = fmt.Errorf("home feed: %w", r.AsError())
	}

	if h.ctx.Err() != nil {
		return
	}
	next.Hero = pickHero(next.TrendingMovies, h.pick)
	h.state.Set(next)
}

// pickHero returns a random title from titles, the first one if the picker
// returns an out-of-range index, or nil when titles is empty.
func pickHero(titles []domain.Title, pick func(n int) int) *domain.Title {
	if len(titles) == 0 {
		return nil
	}
	i := pick(len(titles))
	if i < 0 || i >= len(titles) {
		i = 0
	}
	hero := titles[i]
	return &hero
}
