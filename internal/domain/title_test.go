package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMediaKind(t *testing.T) {
	tests := []struct {
		in   string
		want MediaKind
	}{
		{"movie", MediaKindMovie},
		{"tv", MediaKindTV},
		{"TV", MediaKindTV},
		{" Tv ", MediaKindTV},
		{"person", MediaKindMovie},
		{"", MediaKindMovie},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMediaKind(tt.in))
		})
	}
}

func TestMediaKind_Other(t *testing.T) {
	assert.Equal(t, MediaKindTV, MediaKindMovie.Other())
	assert.Equal(t, MediaKindMovie, MediaKindTV.Other())
	assert.Equal(t, "movie", MediaKind("").String())
}

func TestTitle_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Breaking Bad", Title{Name: "Breaking Bad", Title: "ignored"}.DisplayTitle())
	assert.Equal(t, "Inception", Title{Title: "Inception"}.DisplayTitle())
	assert.Equal(t, UnknownTitle, Title{ID: 1}.DisplayTitle())
}

func TestTitle_RatingPercent(t *testing.T) {
	assert.Equal(t, 83, Title{VoteAverage: 8.37}.RatingPercent())
	assert.Equal(t, 70, Title{VoteAverage: 7.0}.RatingPercent())
	assert.Equal(t, 0, Title{}.RatingPercent())
}

func TestTitle_HasPosterAndYear(t *testing.T) {
	assert.False(t, Title{}.HasPoster())
	assert.True(t, Title{PosterURL: "https://image.tmdb.org/t/p/w500/a.jpg"}.HasPoster())
	assert.Equal(t, "2010", Title{ReleaseDate: "2010-07-16"}.Year())
	assert.Equal(t, "", Title{ReleaseDate: "20"}.Year())
}
