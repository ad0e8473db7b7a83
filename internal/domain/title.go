package domain

import (
	"math"
	"strings"
)

// UnknownTitle is shown when a record carries neither a name nor a title.
const UnknownTitle = "Unknown Title"

// MediaKind distinguishes movies from TV shows.
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindTV    MediaKind = "tv"
)

// ParseMediaKind converts a stored or wire media type to a MediaKind.
// Matching is case-insensitive; empty or unrecognised values become movie.
func ParseMediaKind(s string) MediaKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(MediaKindTV):
		return MediaKindTV
	default:
		return MediaKindMovie
	}
}

// String returns the wire value ("movie" or "tv").
func (k MediaKind) String() string {
	if k == "" {
		return string(MediaKindMovie)
	}
	return string(k)
}

// Other returns the opposite kind.
func (k MediaKind) Other() MediaKind {
	if k == MediaKindTV {
		return MediaKindMovie
	}
	return MediaKindTV
}

// Label returns a human-readable plural label for the kind.
func (k MediaKind) Label() string {
	if k == MediaKindTV {
		return "TV Shows"
	}
	return "Movies"
}

// Title is a movie or TV show as the rest of the application sees it.
// Empty strings mean the field was absent upstream.
type Title struct {
	ID          int       `json:"id"`
	Title       string    `json:"title,omitempty"` // movie-style name
	Name        string    `json:"name,omitempty"`  // TV-style name
	Overview    string    `json:"overview,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`
	BackdropURL string    `json:"backdrop_url,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty"` // first-air date for TV
	VoteAverage float64   `json:"vote_average,omitempty"` // 0-10, 0 = unrated
	Kind        MediaKind `json:"media_type"`
}

// DisplayTitle returns the TV name if present, else the movie title.
func (t Title) DisplayTitle() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Title != "" {
		return t.Title
	}
	return UnknownTitle
}

// RatingPercent returns the rating as a whole percentage (vote average x 10, floored).
func (t Title) RatingPercent() int {
	return int(math.Floor(t.VoteAverage * 10))
}

// HasPoster reports whether a poster URL is available.
func (t Title) HasPoster() bool {
	return t.PosterURL != ""
}

// Year returns the four-digit year of the release date, or "" if unknown.
func (t Title) Year() string {
	if len(t.ReleaseDate) >= 4 {
		return t.ReleaseDate[:4]
	}
	return ""
}
