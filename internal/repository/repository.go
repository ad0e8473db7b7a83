// Package repository aggregates the remote clients and the local store behind
// domain.TitleRepository.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/store"
	"github.com/mmcdole/vidda/internal/tmdb"
	"github.com/mmcdole/vidda/internal/youtube"
)

// Metadata is the subset of the TMDB client the repository uses.
type Metadata interface {
	Trending(ctx context.Context, media domain.MediaKind) (*tmdb.Page, error)
	TopRated(ctx context.Context, media domain.MediaKind) (*tmdb.Page, error)
	Upcoming(ctx context.Context) (*tmdb.Page, error)
	Search(ctx context.Context, media domain.MediaKind, query string) (*tmdb.Page, error)
	Details(ctx context.Context, media domain.MediaKind, id int) (*tmdb.Result, error)
}

// Videos is the subset of the YouTube client the repository uses.
type Videos interface {
	Search(ctx context.Context, query string) (*youtube.SearchResponse, error)
}

// Saved is the local saved-title store.
type Saved interface {
	Put(rec store.SavedTitle) error
	Delete(id int) error
	DeleteAll() error
	Exists(id int) (bool, error)
	Watch(ctx context.Context) <-chan []store.SavedTitle
}

// Repository implements domain.TitleRepository.
type Repository struct {
	meta   Metadata
	videos Videos
	saved  Saved
	logger *slog.Logger
}

var _ domain.TitleRepository = (*Repository)(nil)

// New creates a Repository.
func New(meta Metadata, videos Videos, saved Saved, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		meta:   meta,
		videos: videos,
		saved:  saved,
		logger: logger,
	}
}

// TrailerQuery is the search text used to find a title's trailer.
func TrailerQuery(displayName string) string {
	return displayName + " trailer"
}

// fetchList runs a page request and maps the results.
func (r *Repository) fetchList(op string, kind domain.MediaKind, call func() (*tmdb.Page, error)) ([]domain.Title, error) {
	page, err := call()
	if err != nil {
		fe := classify(err)
		r.logger.Warn("remote request failed", "op", op, "kind", kind.String(), "error_kind", fe.Kind.String(), "error", err)
		return nil, fe
	}
	titles := tmdb.MapTitles(page.Results, kind)
	r.logger.Debug("remote request", "op", op, "kind", kind.String(), "count", len(titles))
	return titles, nil
}

// Trending returns today's trending titles of kind.
func (r *Repository) Trending(ctx context.Context, kind domain.MediaKind) ([]domain.Title, error) {
	return r.fetchList("trending", kind, func() (*tmdb.Page, error) {
		return r.meta.Trending(ctx, kind)
	})
}

// TopRated returns the top rated titles of kind.
func (r *Repository) TopRated(ctx context.Context, kind domain.MediaKind) ([]domain.Title, error) {
	return r.fetchList("top_rated", kind, func() (*tmdb.Page, error) {
		return r.meta.TopRated(ctx, kind)
	})
}

// Upcoming returns upcoming movies.
func (r *Repository) Upcoming(ctx context.Context) ([]domain.Title, error) {
	return r.fetchList("upcoming", domain.MediaKindMovie, func() (*tmdb.Page, error) {
		return r.meta.Upcoming(ctx)
	})
}

// Search runs a free-text search for titles of kind.
func (r *Repository) Search(ctx context.Context, kind domain.MediaKind, query string) ([]domain.Title, error) {
	return r.fetchList("search", kind, func() (*tmdb.Page, error) {
		return r.meta.Search(ctx, kind, query)
	})
}

// TitleDetails fetches a single title. A record without an id is a parse failure.
func (r *Repository) TitleDetails(ctx context.Context, id int, kind domain.MediaKind) (domain.Title, error) {
	res, err := r.meta.Details(ctx, kind, id)
	if err != nil {
		fe := classify(err)
		r.logger.Warn("remote request failed", "op", "details", "id", id, "error_kind", fe.Kind.String(), "error", err)
		return domain.Title{}, fe
	}
	t, ok := tmdb.MapTitle(*res, kind)
	if !ok {
		fe := domain.NewParseError(fmt.Sprintf("failed to parse title details for id %d", id), nil)
		r.logger.Warn("remote request failed", "op", "details", "id", id, "error_kind", fe.Kind.String())
		return domain.Title{}, fe
	}
	r.logger.Debug("remote request", "op", "details", "id", id)
	return t, nil
}

// TrailerVideoID returns the id of the first video matching "<name> trailer".
func (r *Repository) TrailerVideoID(ctx context.Context, displayName string) (string, error) {
	resp, err := r.videos.Search(ctx, TrailerQuery(displayName))
	if err != nil {
		fe := classify(err)
		r.logger.Warn("remote request failed", "op", "trailer", "title", displayName, "error_kind", fe.Kind.String(), "error", err)
		return "", fe
	}
	id, ok := resp.FirstVideoID()
	if !ok {
		fe := domain.NewParseError("no video id found for "+displayName, domain.ErrNoTrailer)
		r.logger.Warn("remote request failed", "op", "trailer", "title", displayName, "error_kind", fe.Kind.String())
		return "", fe
	}
	r.logger.Debug("remote request", "op", "trailer", "title", displayName, "video_id", id)
	return id, nil
}

// SaveTitle inserts or replaces t in the saved list.
func (r *Repository) SaveTitle(ctx context.Context, t domain.Title) error {
	if err := r.saved.Put(store.FromTitle(t, time.Now())); err != nil {
		r.logger.Error("failed to save title", "id", t.ID, "error", err)
		return fmt.Errorf("save title %d: %w", t.ID, err)
	}
	return nil
}

// DeleteTitle removes t from the saved list. Removing an unsaved title is a no-op.
func (r *Repository) DeleteTitle(ctx context.Context, t domain.Title) error {
	if err := r.saved.Delete(t.ID); err != nil {
		r.logger.Error("failed to delete title", "id", t.ID, "error", err)
		return fmt.Errorf("delete title %d: %w", t.ID, err)
	}
	return nil
}

// IsSaved reports whether the title with id is in the saved list.
func (r *Repository) IsSaved(ctx context.Context, id int) (bool, error) {
	ok, err := r.saved.Exists(id)
	if err != nil {
		return false, fmt.Errorf("check saved title %d: %w", id, err)
	}
	return ok, nil
}

// ClearSaved removes every saved title.
func (r *Repository) ClearSaved(ctx context.Context) error {
	if err := r.saved.DeleteAll(); err != nil {
		r.logger.Error("failed to clear saved titles", "error", err)
		return fmt.Errorf("clear saved titles: %w", err)
	}
	return nil
}

// SavedTitles yields the saved list now and after every change until ctx ends.
func (r *Repository) SavedTitles(ctx context.Context) (<-chan []domain.Title, error) {
	in := r.saved.Watch(ctx)
	out := make(chan []domain.Title, 1)
	go func() {
		defer close(out)
		for recs := range in {
			titles := make([]domain.Title, len(recs))
			for i, rec := range recs {
				titles[i] = rec.ToTitle()
			}
			// Latest wins: replace an unread snapshot.
			select {
			case <-out:
			default:
			}
			select {
			case out <- titles:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
