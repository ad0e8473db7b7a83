package controller

import (
	"context"
	"log/slog"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/observe"
)

// SavedState mirrors the saved list. Err holds the last storage failure.
type SavedState struct {
	Titles []domain.Title
	Err    error
}

// Saved follows the repository's live saved list.
type Saved struct {
	lifecycle
	repo   domain.TitleRepository
	logger *slog.Logger

	state *observe.Value[SavedState]
}

// NewSaved creates a Saved controller bound to ctx. Call Start to begin following.
func NewSaved(ctx context.Context, repo domain.TitleRepository, opts ...Option) *Saved {
	o := buildOptions(opts)
	s := &Saved{
		repo:   repo,
		logger: o.logger,
		state:  observe.NewValue(SavedState{}),
	}
	s.start(ctx)
	return s
}

// State returns the current state.
func (s *Saved) State() SavedState { return s.state.Get() }

// Subscribe returns a channel of state updates and a function to stop them.
func (s *Saved) Subscribe() (<-chan SavedState, func()) { return subscribe(&s.lifecycle, s.state) }

// Start subscribes to the saved list until the controller closes.
func (s *Saved) Start() {
	live, err := s.repo.SavedTitles(s.ctx)
	if err != nil {
		s.logger.Error("failed to watch saved titles", "error", err)
		s.state.Update(func(st SavedState) SavedState {
			st.Err = err
			return st
		})
		return
	}
	s.spawn(func() {
		for {
			select {
			case <-s.ctx.Done():
				return
			case titles, ok := <-live:
				if !ok {
					return
				}
				s.state.Update(func(st SavedState) SavedState {
					st.Titles = titles
					return st
				})
			}
		}
	})
}

// Delete removes t from the saved list in the background. The list updates
// through the live subscription; a failure is stored in Err.
func (s *Saved) Delete(t domain.Title) {
	s.spawn(func() {
		if err := s.repo.DeleteTitle(s.ctx, t); err != nil {
			s.logger.Error("failed to delete title", "id", t.ID, "error", err)
			s.state.Update(func(st SavedState) SavedState {
				st.Err = err
				return st
			})
			return
		}
		s.state.Update(func(st SavedState) SavedState {
			st.Err = nil
			return st
		})
	})
}

// Clear removes every saved title in the background.
func (s *Saved) Clear() {
	s.spawn(func() {
		if err := s.repo.ClearSaved(s.ctx); err != nil {
			s.logger.Error("failed to clear saved titles", "error", err)
			s.state.Update(func(st SavedState) SavedState {
				st.Err = err
				return st
			})
		}
	})
}
