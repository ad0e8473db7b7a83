package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/observe"
)

// Upcoming loads the upcoming movies list.
type Upcoming struct {
	lifecycle
	repo   domain.TitleRepository
	logger *slog.Logger

	mu        sync.Mutex
	seq       uint64
	cancelRun context.CancelFunc

	state *observe.Value[Async[[]domain.Title]]
}

// NewUpcoming creates an Upcoming controller bound to ctx.
func NewUpcoming(ctx context.Context, repo domain.TitleRepository, opts ...Option) *Upcoming {
	o := buildOptions(opts)
	u := &Upcoming{
		repo:   repo,
		logger: o.logger,
		state:  observe.NewValue(Async[[]domain.Title]{}),
	}
	u.start(ctx)
	return u
}

// State returns the current state.
func (u *Upcoming) State() Async[[]domain.Title] { return u.state.Get() }

// Subscribe returns a channel of state updates and a function to stop them.
func (u *Upcoming) Subscribe() (<-chan Async[[]domain.Title], func()) {
	return subscribe(&u.lifecycle, u.state)
}

// Load fetches the list on first activation only.
func (u *Upcoming) Load() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state.Get().Status != StatusInitial {
		return
	}
	u.runLocked()
}

// Retry refetches the list, superseding any fetch in flight.
func (u *Upcoming) Retry() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.runLocked()
}

func (u *Upcoming) runLocked() {
	if u.ctx.Err() != nil {
		return
	}
	if u.cancelRun != nil {
		u.cancelRun()
	}
	u.seq++
	seq := u.seq
	ctx, cancel := context.WithCancel(u.ctx)
	u.cancelRun = cancel

	u.state.Set(Loading[[]domain.Title]())
	u.spawn(func() {
		defer cancel()
		titles, err := u.repo.Upcoming(ctx)

		u.mu.Lock()
		defer u.mu.Unlock()
		if seq != u.seq || ctx.Err() != nil {
			return
		}
		if err != nil {
			u.logger.Warn("upcoming failed", "error", err)
			u.state.Set(Failed[[]domain.Title](err))
			return
		}
		u.state.Set(Succeeded(titles))
	})
}
