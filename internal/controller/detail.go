package controller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/observe"
)

// SaveStatus is the state of the bookmark action.
type SaveStatus int

const (
	SaveIdle SaveStatus = iota
	SaveSaving
	SaveSuccess
	SaveError
)

// SaveState is the bookmark action's state. Message is set on error.
type SaveState struct {
	Status  SaveStatus
	Message string
}

// DetailState is what the detail screen renders.
type DetailState struct {
	Title Async[domain.Title]
	Video Async[string]
	Save  SaveState
	Saved bool
}

// Detail loads one title, then its trailer, and saves it on request.
type Detail struct {
	lifecycle
	repo      domain.TitleRepository
	logger    *slog.Logger
	saveReset time.Duration

	mu         sync.Mutex
	seq        uint64
	cancelLoad context.CancelFunc
	saveGen    uint64
	resetTimer *time.Timer

	state *observe.Value[DetailState]
}

// NewDetail creates a Detail controller bound to ctx.
func NewDetail(ctx context.Context, repo domain.TitleRepository, opts ...Option) *Detail {
	o := buildOptions(opts)
	d := &Detail{
		repo:      repo,
		logger:    o.logger,
		saveReset: o.saveReset,
		state:     observe.NewValue(DetailState{}),
	}
	d.start(ctx)
	return d
}

// State returns the current state.
func (d *Detail) State() DetailState { return d.state.Get() }

// Subscribe returns a channel of state updates and a function to stop them.
func (d *Detail) Subscribe() (<-chan DetailState, func()) { return subscribe(&d.lifecycle, d.state) }

// Load fetches the title with id. The trailer lookup starts once details arrive.
func (d *Detail) Load(id int, kind domain.MediaKind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ctx.Err() != nil {
		return
	}
	if d.cancelLoad != nil {
		d.cancelLoad()
	}
	d.seq++
	d.saveGen++
	seq := d.seq
	ctx, cancel := context.WithCancel(d.ctx)
	d.cancelLoad = cancel

	d.state.Set(DetailState{Title: Loading[domain.Title]()})

	d.spawn(func() {
		defer cancel()
		d.load(ctx, seq, id, kind)
	})
}

func (d *Detail) load(ctx context.Context, seq uint64, id int, kind domain.MediaKind) {
	title, err := d.repo.TitleDetails(ctx, id, kind)
	if err != nil {
		d.logger.Warn("title details failed", "id", id, "kind", kind.String(), "error", err)
		d.apply(ctx, seq, func(s DetailState) DetailState {
			s.Title = Failed[domain.Title](err)
			return s
		})
		return
	}

	saved, err := d.repo.IsSaved(ctx, title.ID)
	if err != nil {
		d.logger.Warn("saved lookup failed", "id", id, "error", err)
	}
	if !d.apply(ctx, seq, func(s DetailState) DetailState {
		s.Title = Succeeded(title)
		s.Video = Loading[string]()
		s.Saved = saved
		return s
	}) {
		return
	}

	videoID, err := d.repo.TrailerVideoID(ctx, title.DisplayTitle())
	d.apply(ctx, seq, func(s DetailState) DetailState {
		if err != nil {
			d.logger.Warn("trailer lookup failed", "title", title.DisplayTitle(), "error", err)
			s.Video = Failed[string](err)
		} else {
			s.Video = Succeeded(videoID)
		}
		return s
	})
}

// apply updates state only if the load that produced it is still current.
func (d *Detail) apply(ctx context.Context, seq uint64, fn func(DetailState) DetailState) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq || ctx.Err() != nil {
		return false
	}
	d.state.Update(fn)
	return true
}

// Save bookmarks the loaded title. It does nothing until details have loaded
// or while a save is already running.
func (d *Detail) Save() {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := d.state.Get()
	if st.Title.Status != StatusSuccess || st.Save.Status == SaveSaving || d.ctx.Err() != nil {
		return
	}
	title := st.Title.Data
	d.saveGen++
	gen := d.saveGen
	if d.resetTimer != nil {
		d.resetTimer.Stop()
	}
	d.state.Update(func(s DetailState) DetailState {
		s.Save = SaveState{Status: SaveSaving}
		return s
	})

	d.spawn(func() {
		err := d.repo.SaveTitle(d.ctx, title)

		d.mu.Lock()
		defer d.mu.Unlock()
		if gen != d.saveGen || d.ctx.Err() != nil {
			return
		}
		if err != nil {
			d.logger.Error("failed to save title", "id", title.ID, "error", err)
			d.state.Update(func(s DetailState) DetailState {
				s.Save = SaveState{Status: SaveError, Message: err.Error()}
				return s
			})
			return
		}
		d.state.Update(func(s DetailState) DetailState {
			s.Save = SaveState{Status: SaveSuccess}
			if s.Title.Data.ID == title.ID {
				s.Saved = true
			}
			return s
		})
		d.resetTimer = time.AfterFunc(d.saveReset, func() { d.resetSave(gen) })
	})
}

func (d *Detail) resetSave(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.saveGen || d.ctx.Err() != nil {
		return
	}
	d.state.Update(func(s DetailState) DetailState {
		if s.Save.Status == SaveSuccess {
			s.Save = SaveState{Status: SaveIdle}
		}
		return s
	})
}

// Close cancels the load and any pending save reset.
func (d *Detail) Close() {
	d.mu.Lock()
	if d.resetTimer != nil {
		d.resetTimer.Stop()
	}
	d.mu.Unlock()
	d.lifecycle.Close()
}
