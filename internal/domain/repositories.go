package domain

import (
	"context"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// TitleRepository is the single data seam the controllers depend on.
// Remote operations return a *FetchError on failure; storage operations
// return the underlying storage error wrapped.
type TitleRepository interface {
	// Trending returns today's trending titles of the given kind
	Trending(ctx context.Context, kind MediaKind) ([]Title, error)

	// TopRated returns the top rated titles of the given kind
	TopRated(ctx context.Context, kind MediaKind) ([]Title, error)

	// Upcoming returns upcoming movie releases
	Upcoming(ctx context.Context) ([]Title, error)

	// Search performs a free-text search for titles of the given kind
	Search(ctx context.Context, kind MediaKind, query string) ([]Title, error)

	// TitleDetails returns a single title by id
	TitleDetails(ctx context.Context, id int, kind MediaKind) (Title, error)

	// TrailerVideoID returns the video id of the first trailer search hit
	TrailerVideoID(ctx context.Context, displayName string) (string, error)

	// SaveTitle bookmarks a title, replacing any earlier copy
	SaveTitle(ctx context.Context, t Title) error

	// DeleteTitle removes a bookmarked title
	DeleteTitle(ctx context.Context, t Title) error

	// IsSaved reports whether a title id is bookmarked
	IsSaved(ctx context.Context, id int) (bool, error)

	// ClearSaved removes every bookmarked title
	ClearSaved(ctx context.Context) error

	// SavedTitles streams the bookmarked titles, sorted by display title.
	// The current list is delivered first, then a fresh list after every change.
	// The channel is closed when ctx is done.
	SavedTitles(ctx context.Context) (<-chan []Title, error)
}
