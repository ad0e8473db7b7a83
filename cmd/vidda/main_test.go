package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/vidda/internal/config"
	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/domain/mocks"
	"github.com/mmcdole/vidda/internal/log"
)

type fakePlayer struct {
	played []string
}

func (p *fakePlayer) PlayTrailer(videoID string) error {
	p.played = append(p.played, videoID)
	return nil
}

type harness struct {
	repo   *mocks.MockTitleRepository
	player *fakePlayer
	opts   config.Options
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		repo:   mocks.NewMockTitleRepository(gomock.NewController(t)),
		player: &fakePlayer{},
	}
}

// run executes the CLI with args and returns stdout.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	open := func(opts config.Options) (*env, error) {
		h.opts = opts
		return &env{
			cfg:         config.DefaultConfig(),
			logger:      log.NullLogger(),
			repo:        h.repo,
			player:      h.player,
			trailerBase: "https://www.youtube.com/embed",
		}, nil
	}
	var out bytes.Buffer
	root := newRootCmd(open)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

var (
	dune  = domain.Title{ID: 438631, Title: "Dune", ReleaseDate: "2021-09-15", VoteAverage: 7.8, Kind: domain.MediaKindMovie}
	andor = domain.Title{ID: 83867, Name: "Andor", ReleaseDate: "2022-09-21", VoteAverage: 8.2, Kind: domain.MediaKindTV}
)

func TestTrending_Table(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().Trending(gomock.Any(), domain.MediaKindMovie).Return([]domain.Title{dune}, nil)

	out, err := h.run(t, "trending")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "438631")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "2021")
	assert.Contains(t, out, "78%")
}

func TestTopRated_TVJSON(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().TopRated(gomock.Any(), domain.MediaKindTV).Return([]domain.Title{andor}, nil)

	out, err := h.run(t, "top-rated", "--tv", "--json")
	require.NoError(t, err)

	var got []domain.Title
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []domain.Title{andor}, got)
}

func TestUpcoming_EmptyJSONIsArray(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().Upcoming(gomock.Any()).Return(nil, nil)

	out, err := h.run(t, "--json", "upcoming")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestSearch_JoinsArgs(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().Search(gomock.Any(), domain.MediaKindTV, "the bear").Return(nil, nil)

	out, err := h.run(t, "search", "--tv", "the", "bear")
	require.NoError(t, err)
	assert.Contains(t, out, `No results for "the bear"`)
}

func TestSearch_ErrorIsWrapped(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().Search(gomock.Any(), domain.MediaKindMovie, "dune").
		Return(nil, &domain.FetchError{Kind: domain.KindNoConnection})

	_, err := h.run(t, "search", "dune")
	require.Error(t, err)
	assert.Equal(t, domain.KindNoConnection, domain.KindOf(err))
	assert.True(t, domain.IsRetryable(err))
}

func TestDetails(t *testing.T) {
	h := newHarness(t)
	d := dune
	d.Overview = "Paul Atreides travels to Arrakis."
	h.repo.EXPECT().TitleDetails(gomock.Any(), 438631, domain.MediaKindMovie).Return(d, nil)
	h.repo.EXPECT().IsSaved(gomock.Any(), 438631).Return(true, nil)

	out, err := h.run(t, "details", "438631")
	require.NoError(t, err)
	assert.Contains(t, out, "Dune (2021)")
	assert.Contains(t, out, "Saved:    true")
	assert.Contains(t, out, "Paul Atreides")
}

func TestDetails_InvalidID(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "details", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid title id "abc"`)
}

func TestTrailer_PrintsURLAndPlays(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().TrailerVideoID(gomock.Any(), "andor").Return("cKOegEuCcfw", nil).Times(2)

	out, err := h.run(t, "trailer", "andor")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/cKOegEuCcfw\n", out)
	assert.Empty(t, h.player.played)

	_, err = h.run(t, "trailer", "--play", "andor")
	require.NoError(t, err)
	assert.Equal(t, []string{"cKOegEuCcfw"}, h.player.played)
}

func TestTrailer_NotFound(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().TrailerVideoID(gomock.Any(), "obscure").
		Return("", domain.NewParseError("no video id found for obscure", domain.ErrNoTrailer))

	_, err := h.run(t, "trailer", "obscure")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoTrailer))
}

func TestSavedList(t *testing.T) {
	h := newHarness(t)
	live := make(chan []domain.Title, 1)
	live <- []domain.Title{andor, dune}
	h.repo.EXPECT().SavedTitles(gomock.Any()).Return(live, nil)

	out, err := h.run(t, "saved", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Andor")
	assert.Contains(t, out, "Dune")
}

func TestSavedList_Empty(t *testing.T) {
	h := newHarness(t)
	live := make(chan []domain.Title, 1)
	live <- nil
	h.repo.EXPECT().SavedTitles(gomock.Any()).Return(live, nil)

	out, err := h.run(t, "saved", "list")
	require.NoError(t, err)
	assert.Equal(t, "No saved titles\n", out)
}

func TestSavedAdd(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.repo.EXPECT().TitleDetails(gomock.Any(), 83867, domain.MediaKindTV).Return(andor, nil),
		h.repo.EXPECT().SaveTitle(gomock.Any(), andor).Return(nil),
	)

	out, err := h.run(t, "saved", "add", "--tv", "83867")
	require.NoError(t, err)
	assert.Equal(t, "Saved Andor (83867)\n", out)
}

func TestSavedRemove(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().IsSaved(gomock.Any(), 5).Return(true, nil)
	h.repo.EXPECT().DeleteTitle(gomock.Any(), domain.Title{ID: 5}).Return(nil)

	out, err := h.run(t, "saved", "rm", "5")
	require.NoError(t, err)
	assert.Equal(t, "Removed 5\n", out)

	h.repo.EXPECT().IsSaved(gomock.Any(), 6).Return(false, nil)
	_, err = h.run(t, "saved", "rm", "6")
	assert.EqualError(t, err, "title 6 is not saved")
}

func TestSavedClear(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().ClearSaved(gomock.Any()).Return(nil)

	out, err := h.run(t, "saved", "clear")
	require.NoError(t, err)
	assert.Equal(t, "Cleared saved titles\n", out)
}

func TestGlobalFlagsReachOpener(t *testing.T) {
	h := newHarness(t)
	h.repo.EXPECT().Upcoming(gomock.Any()).Return(nil, nil)

	_, err := h.run(t, "--config-dir", "/etc/vidda", "--api-config", "/tmp/APIConfig.json", "upcoming")
	require.NoError(t, err)
	assert.Equal(t, "/etc/vidda", h.opts.ConfigDir)
	assert.Equal(t, "/tmp/APIConfig.json", h.opts.APIConfigPath)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, err := h.run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "vidda dev\n", out)
}
