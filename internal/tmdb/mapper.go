package tmdb

import (
	"strings"

	"github.com/mmcdole/vidda/internal/domain"
)

// PosterBaseURL is prefixed to relative poster and backdrop paths
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// MapTitles converts TMDB results to domain titles, dropping records without an id.
// An empty kind means each record's own media_type decides.
func MapTitles(results []Result, kind domain.MediaKind) []domain.Title {
	titles := make([]domain.Title, 0, len(results))
	for _, r := range results {
		if t, ok := MapTitle(r, kind); ok {
			titles = append(titles, t)
		}
	}
	return titles
}

// MapTitle converts a single TMDB result. It returns false when the record has no id.
func MapTitle(r Result, kind domain.MediaKind) (domain.Title, bool) {
	if r.ID == nil {
		return domain.Title{}, false
	}

	if kind == "" {
		kind = domain.ParseMediaKind(deref(r.MediaType))
	}

	date := deref(r.ReleaseDate)
	if kind == domain.MediaKindTV {
		date = deref(r.FirstAirDate)
	}

	t := domain.Title{
		ID:          *r.ID,
		Title:       deref(r.Title),
		Name:        deref(r.Name),
		Overview:    deref(r.Overview),
		PosterURL:   ImageURL(deref(r.PosterPath)),
		BackdropURL: ImageURL(deref(r.BackdropPath)),
		ReleaseDate: date,
		Kind:        kind,
	}
	if r.VoteAverage != nil {
		t.VoteAverage = *r.VoteAverage
	}
	return t, true
}

// ImageURL absolutizes a TMDB image path. Paths that are already full URLs
// and empty paths are returned unchanged.
func ImageURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return PosterBaseURL + path
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
