package store

import (
	"time"

	"github.com/mmcdole/vidda/internal/domain"
)

// SavedTitle is the persisted form of a bookmarked title.
type SavedTitle struct {
	ID          int     `json:"id"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	PosterURL   string  `json:"poster_url,omitempty"`
	BackdropURL string  `json:"backdrop_url,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	MediaType   string  `json:"media_type"`
	SavedAt     int64   `json:"saved_at"` // epoch ms
}

// FromTitle converts a domain title, stamping SavedAt with now.
func FromTitle(t domain.Title, now time.Time) SavedTitle {
	return SavedTitle{
		ID:          t.ID,
		Title:       t.Title,
		Name:        t.Name,
		Overview:    t.Overview,
		PosterURL:   t.PosterURL,
		BackdropURL: t.BackdropURL,
		ReleaseDate: t.ReleaseDate,
		VoteAverage: t.VoteAverage,
		MediaType:   t.Kind.String(),
		SavedAt:     now.UnixMilli(),
	}
}

// ToTitle converts the record back into a domain title.
func (s SavedTitle) ToTitle() domain.Title {
	return domain.Title{
		ID:          s.ID,
		Title:       s.Title,
		Name:        s.Name,
		Overview:    s.Overview,
		PosterURL:   s.PosterURL,
		BackdropURL: s.BackdropURL,
		ReleaseDate: s.ReleaseDate,
		VoteAverage: s.VoteAverage,
		Kind:        domain.ParseMediaKind(s.MediaType),
	}
}

// DisplayTitle is the name the saved list is ordered by.
func (s SavedTitle) DisplayTitle() string {
	return s.ToTitle().DisplayTitle()
}

// SavedTime returns SavedAt as a time.Time.
func (s SavedTitle) SavedTime() time.Time {
	return time.UnixMilli(s.SavedAt)
}
