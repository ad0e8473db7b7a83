package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/vidda/internal/domain"
)

func TestSaved_MirrorsLiveList(t *testing.T) {
	repo := newMockRepo(t)
	live := make(chan []domain.Title, 1)
	repo.EXPECT().SavedTitles(gomock.Any()).Return((<-chan []domain.Title)(live), nil)

	s := NewSaved(context.Background(), repo)
	t.Cleanup(s.Close)
	s.Start()

	live <- []domain.Title{movie(1, "Alien")}
	eventually(t, s.State, func(st SavedState) bool { return len(st.Titles) == 1 })

	live <- []domain.Title{movie(1, "Alien"), movie(2, "Aliens")}
	st := eventually(t, s.State, func(st SavedState) bool { return len(st.Titles) == 2 })
	assert.Equal(t, "Aliens", st.Titles[1].DisplayTitle())
	assert.NoError(t, st.Err)
}

func TestSaved_DeleteFailureSurfaces(t *testing.T) {
	repo := newMockRepo(t)
	live := make(chan []domain.Title)
	repo.EXPECT().SavedTitles(gomock.Any()).Return((<-chan []domain.Title)(live), nil)
	repo.EXPECT().DeleteTitle(gomock.Any(), movie(1, "Alien")).Return(errors.New("database is locked"))
	repo.EXPECT().DeleteTitle(gomock.Any(), movie(2, "Aliens")).Return(nil)

	s := NewSaved(context.Background(), repo)
	t.Cleanup(s.Close)
	s.Start()

	s.Delete(movie(1, "Alien"))
	st := eventually(t, s.State, func(st SavedState) bool { return st.Err != nil })
	assert.EqualError(t, st.Err, "database is locked")

	s.Delete(movie(2, "Aliens"))
	eventually(t, s.State, func(st SavedState) bool { return st.Err == nil })
}

func TestSaved_StartFailure(t *testing.T) {
	repo := newMockRepo(t)
	repo.EXPECT().SavedTitles(gomock.Any()).Return(nil, errors.New("store closed"))

	s := NewSaved(context.Background(), repo)
	t.Cleanup(s.Close)
	s.Start()

	assert.EqualError(t, s.State().Err, "store closed")
}

func TestFilterTitles(t *testing.T) {
	titles := []domain.Title{
		movie(1, "Alien"),
		movie(2, "Blade Runner"),
		show(3, "Pokémon"),
		movie(4, "Aliens"),
	}

	assert.Equal(t, titles, FilterTitles(titles, ""))

	got := FilterTitles(titles, "alien")
	assert.Equal(t, []int{1, 4}, ids(got))

	assert.Equal(t, []int{3}, ids(FilterTitles(titles, "pokemon")))
	assert.Equal(t, []int{2}, ids(FilterTitles(titles, "bldrnr")))
	assert.Empty(t, FilterTitles(titles, "zzz"))
}

func ids(titles []domain.Title) []int {
	out := make([]int, len(titles))
	for i, t := range titles {
		out[i] = t.ID
	}
	return out
}
