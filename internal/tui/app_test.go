package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/vidda/internal/controller"
	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/domain/mocks"
)

type fakePlayer struct {
	played []string
	err    error
}

func (p *fakePlayer) PlayTrailer(videoID string) error {
	p.played = append(p.played, videoID)
	return p.err
}

func newTestModel(t *testing.T) (Model, *mocks.MockTitleRepository, *fakePlayer) {
	t.Helper()
	repo := mocks.NewMockTitleRepository(gomock.NewController(t))
	ctx := context.Background()
	ctl := Controllers{
		Home:     controller.NewHome(ctx, repo),
		Search:   controller.NewSearch(ctx, repo, controller.WithDebounce(10*time.Millisecond)),
		Upcoming: controller.NewUpcoming(ctx, repo),
		Detail:   controller.NewDetail(ctx, repo),
		Saved:    controller.NewSaved(ctx, repo),
	}
	t.Cleanup(func() {
		ctl.Home.Close()
		ctl.Search.Close()
		ctl.Upcoming.Close()
		ctl.Detail.Close()
		ctl.Saved.Close()
	})

	player := &fakePlayer{}
	m := NewModel(ctl, player)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, repo, player
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_WindowSizeMakesReady(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.True(t, m.Ready)
	assert.Equal(t, 100, m.Width)
	assert.Contains(t, m.View(), "Home")
}

func TestModel_TabKeysSwitchScreens(t *testing.T) {
	m, repo, _ := newTestModel(t)
	repo.EXPECT().Upcoming(gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().Trending(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	m, _ = update(m, press("3"))
	assert.Equal(t, TabUpcoming, m.Tab)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabSaved, m.Tab)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabHome, m.Tab)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabSaved, m.Tab)

	m, _ = update(m, press("2"))
	assert.Equal(t, TabSearch, m.Tab)
	assert.True(t, m.searchStarted)
}

func TestModel_HomeStatePopulatesSections(t *testing.T) {
	m, _, _ := newTestModel(t)
	hero := domain.Title{ID: 1, Title: "Dune", Overview: "Spice.", VoteAverage: 8.5}
	m, cmd := update(m, HomeStateMsg{State: controller.HomeState{
		Phase:          controller.PhaseReady,
		TrendingMovies: []domain.Title{hero},
		TrendingTV:     []domain.Title{{ID: 2, Name: "Andor", Kind: domain.MediaKindTV}},
		Hero:           &hero,
	}})
	assert.NotNil(t, cmd, "keeps listening")

	view := m.View()
	assert.Contains(t, view, "Dune")
	assert.Contains(t, view, "85%")

	m, _ = update(m, press("l"))
	assert.Equal(t, rowTrendingTV, m.homeRow)
	sel, ok := m.activeList().Selected()
	require.True(t, ok)
	assert.Equal(t, "Andor", sel.DisplayTitle())

	m, _ = update(m, press("h"))
	m, _ = update(m, press("h"))
	assert.Equal(t, rowTopRatedTV, m.homeRow)
}

func TestModel_EnterOpensDetail(t *testing.T) {
	m, repo, _ := newTestModel(t)
	andor := domain.Title{ID: 2, Name: "Andor", Kind: domain.MediaKindTV}
	repo.EXPECT().TitleDetails(gomock.Any(), 2, domain.MediaKindTV).Return(andor, nil)
	repo.EXPECT().IsSaved(gomock.Any(), 2).Return(false, nil)
	repo.EXPECT().TrailerVideoID(gomock.Any(), "Andor").Return("vid", nil)

	m, _ = update(m, HomeStateMsg{State: controller.HomeState{
		Phase:      controller.PhaseReady,
		TrendingTV: []domain.Title{andor},
	}})
	m, _ = update(m, press("l"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.DetailOpen)
	assert.Equal(t, andor, m.detailTarget)

	require.Eventually(t, func() bool {
		return m.ctl.Detail.State().Video.Status == controller.StatusSuccess
	}, 2*time.Second, 5*time.Millisecond)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.DetailOpen)
}

func TestModel_PlayTrailer(t *testing.T) {
	m, _, player := newTestModel(t)
	m.DetailOpen = true

	_, cmd := update(m, press("p"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, StatusMsg{Message: "No trailer available", IsError: true}, msg)
	assert.Empty(t, player.played)

	m, _ = update(m, DetailStateMsg{State: controller.DetailState{
		Title: controller.Succeeded(domain.Title{ID: 1, Title: "Dune"}),
		Video: controller.Succeeded("abc123"),
	}})
	_, cmd = update(m, press("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, TrailerLaunchedMsg{Title: "Dune"}, cmd())
	assert.Equal(t, []string{"abc123"}, player.played)

	player.err = errors.New("no player")
	_, cmd = update(m, press("p"))
	errMsg, ok := cmd().(ErrMsg)
	require.True(t, ok)
	assert.Equal(t, "playing trailer", errMsg.Context)
}

func TestModel_SaveFailureShowsStatus(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.DetailOpen = true
	m, _ = update(m, DetailStateMsg{State: controller.DetailState{
		Title: controller.Succeeded(domain.Title{ID: 1, Title: "Dune"}),
		Save:  controller.SaveState{Status: controller.SaveSaving},
	}})
	assert.Empty(t, m.StatusMsg)

	m, _ = update(m, DetailStateMsg{State: controller.DetailState{
		Title: controller.Succeeded(domain.Title{ID: 1, Title: "Dune"}),
		Save:  controller.SaveState{Status: controller.SaveError, Message: "disk full"},
	}})
	assert.True(t, m.StatusIsErr)
	assert.Equal(t, "Save failed: disk full", m.StatusMsg)
	assert.Contains(t, m.View(), "Save failed: disk full")
}

func TestModel_SearchInputTypingAndBlur(t *testing.T) {
	m, repo, _ := newTestModel(t)
	repo.EXPECT().Trending(gomock.Any(), domain.MediaKindMovie).Return(nil, nil).AnyTimes()
	repo.EXPECT().Search(gomock.Any(), domain.MediaKindMovie, gomock.Any()).Return(nil, nil).AnyTimes()

	m, _ = update(m, press("2"))
	m, _ = update(m, press("/"))
	require.True(t, m.searchFocused)

	// q is typed, not quit
	m, _ = update(m, press("q"))
	m, _ = update(m, press("u"))
	assert.Equal(t, "qu", m.searchInput.Value())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, m.searchFocused)
	assert.Equal(t, "q", m.searchInput.Value())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searchFocused)
}

func TestModel_SearchResultsReplaceList(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Tab = TabSearch
	results := []domain.Title{{ID: 1, Title: "Alien"}, {ID: 2, Title: "Aliens"}}

	m, _ = update(m, SearchStateMsg{State: controller.SearchState{
		Async: controller.Succeeded(results),
		Kind:  domain.MediaKindMovie,
		Query: "alien",
	}})
	assert.Equal(t, results, m.searchList.Items())

	// A loading state keeps the previous results on screen
	m, _ = update(m, SearchStateMsg{State: controller.SearchState{
		Async: controller.Loading[[]domain.Title](),
		Kind:  domain.MediaKindMovie,
		Query: "aliens",
	}})
	assert.Equal(t, results, m.searchList.Items())
}

func TestModel_SavedFilter(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Tab = TabSaved
	m, _ = update(m, SavedStateMsg{State: controller.SavedState{Titles: []domain.Title{
		{ID: 1, Title: "Alien"},
		{ID: 2, Name: "Andor"},
		{ID: 3, Title: "Zodiac"},
	}}})
	assert.Len(t, m.savedList.Items(), 3)

	m, _ = update(m, press("/"))
	require.True(t, m.filtering)
	m, _ = update(m, press("z"))
	m, _ = update(m, press("o"))
	require.Len(t, m.savedList.Items(), 1)
	assert.Equal(t, "Zodiac", m.savedList.Items()[0].DisplayTitle())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filtering)
	assert.Len(t, m.savedList.Items(), 3)
}

func TestModel_SavedDelete(t *testing.T) {
	m, repo, _ := newTestModel(t)
	alien := domain.Title{ID: 1, Title: "Alien"}
	deleted := make(chan domain.Title, 1)
	repo.EXPECT().DeleteTitle(gomock.Any(), alien).DoAndReturn(func(_ context.Context, t domain.Title) error {
		deleted <- t
		return nil
	})

	m.Tab = TabSaved
	m, _ = update(m, SavedStateMsg{State: controller.SavedState{Titles: []domain.Title{alien}}})
	m, _ = update(m, press("d"))
	assert.Equal(t, "Removed: Alien", m.StatusMsg)

	select {
	case got := <-deleted:
		assert.Equal(t, alien, got)
	case <-time.After(2 * time.Second):
		t.Fatal("delete not issued")
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(m, press("?"))
	assert.True(t, m.ShowHelp)
	assert.Contains(t, m.View(), "Press any key to return")

	m, _ = update(m, press("x"))
	assert.False(t, m.ShowHelp)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := update(m, press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_UnsubscribeEndsListening(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Unsubscribe()

	cmd := m.listenHome()
	require.NotNil(t, cmd)
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		// A primed value may still be buffered; the next read sees the close.
		if msg != nil {
			msg = m.listenHome()()
		}
		assert.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("listen did not return after unsubscribe")
	}
}
