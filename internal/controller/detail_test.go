package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/vidda/internal/domain"
)

func newTestDetail(t *testing.T, repo domain.TitleRepository) *Detail {
	t.Helper()
	d := NewDetail(context.Background(), repo, WithSaveReset(50*time.Millisecond))
	t.Cleanup(d.Close)
	return d
}

func TestDetail_LoadsDetailsThenTrailer(t *testing.T) {
	repo := newMockRepo(t)
	bb := show(1396, "Breaking Bad")
	gomock.InOrder(
		repo.EXPECT().TitleDetails(gomock.Any(), 1396, domain.MediaKindTV).Return(bb, nil),
		repo.EXPECT().IsSaved(gomock.Any(), 1396).Return(true, nil),
		repo.EXPECT().TrailerVideoID(gomock.Any(), "Breaking Bad").Return("HhesaQXLuRY", nil),
	)

	d := newTestDetail(t, repo)
	d.Load(1396, domain.MediaKindTV)

	st := eventually(t, d.State, func(s DetailState) bool { return s.Video.Status == StatusSuccess })
	assert.Equal(t, bb, st.Title.Data)
	assert.Equal(t, "HhesaQXLuRY", st.Video.Data)
	assert.True(t, st.Saved)
	assert.Equal(t, SaveIdle, st.Save.Status)
}

func TestDetail_DetailsFailureSkipsTrailer(t *testing.T) {
	repo := newMockRepo(t)
	repo.EXPECT().TitleDetails(gomock.Any(), 5, domain.MediaKindMovie).
		Return(domain.Title{}, domain.NewParseError("failed to parse title details for id 5", nil))

	d := newTestDetail(t, repo)
	d.Load(5, domain.MediaKindMovie)

	st := eventually(t, d.State, func(s DetailState) bool { return s.Title.Status == StatusError })
	assert.Equal(t, StatusInitial, st.Video.Status)
	assert.Equal(t, domain.KindParse, domain.KindOf(st.Title.Err))
}

func TestDetail_TrailerFailureKeepsDetails(t *testing.T) {
	repo := newMockRepo(t)
	repo.EXPECT().TitleDetails(gomock.Any(), 1, domain.MediaKindMovie).Return(movie(1, "Obscure"), nil)
	repo.EXPECT().IsSaved(gomock.Any(), 1).Return(false, nil)
	repo.EXPECT().TrailerVideoID(gomock.Any(), "Obscure").Return("", domain.NewParseError("no video id found for Obscure", domain.ErrNoTrailer))

	d := newTestDetail(t, repo)
	d.Load(1, domain.MediaKindMovie)

	st := eventually(t, d.State, func(s DetailState) bool { return s.Video.Status == StatusError })
	assert.Equal(t, StatusSuccess, st.Title.Status)
	assert.ErrorIs(t, st.Video.Err, domain.ErrNoTrailer)
}

func TestDetail_SaveResetsToIdle(t *testing.T) {
	repo := newMockRepo(t)
	dune := movie(438631, "Dune")
	repo.EXPECT().TitleDetails(gomock.Any(), dune.ID, domain.MediaKindMovie).Return(dune, nil)
	repo.EXPECT().IsSaved(gomock.Any(), dune.ID).Return(false, nil)
	repo.EXPECT().TrailerVideoID(gomock.Any(), "Dune").Return("n9xhJrPXop4", nil)
	repo.EXPECT().SaveTitle(gomock.Any(), dune).Return(nil)

	d := newTestDetail(t, repo)
	d.Save() // nothing loaded yet
	assert.Equal(t, SaveIdle, d.State().Save.Status)

	d.Load(dune.ID, domain.MediaKindMovie)
	eventually(t, d.State, func(s DetailState) bool { return s.Video.Status == StatusSuccess })

	d.Save()
	st := eventually(t, d.State, func(s DetailState) bool { return s.Save.Status == SaveSuccess })
	assert.True(t, st.Saved)

	eventually(t, d.State, func(s DetailState) bool { return s.Save.Status == SaveIdle })
}

func TestDetail_SaveError(t *testing.T) {
	repo := newMockRepo(t)
	repo.EXPECT().TitleDetails(gomock.Any(), 1, domain.MediaKindMovie).Return(movie(1, "Heat"), nil)
	repo.EXPECT().IsSaved(gomock.Any(), 1).Return(false, nil)
	repo.EXPECT().TrailerVideoID(gomock.Any(), "Heat").Return("x", nil)
	repo.EXPECT().SaveTitle(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	d := newTestDetail(t, repo)
	d.Load(1, domain.MediaKindMovie)
	eventually(t, d.State, func(s DetailState) bool { return s.Video.Status == StatusSuccess })

	d.Save()
	st := eventually(t, d.State, func(s DetailState) bool { return s.Save.Status == SaveError })
	assert.Equal(t, "disk full", st.Save.Message)
	assert.False(t, st.Saved)
}
