package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vidda/internal/controller"
	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/tui/components"
	"github.com/mmcdole/vidda/internal/tui/styles"
)

// Tab identifies a top-level screen
type Tab int

const (
	TabHome Tab = iota
	TabSearch
	TabUpcoming
	TabSaved
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabSearch:
		return "Search"
	case TabUpcoming:
		return "Upcoming"
	case TabSaved:
		return "Saved"
	default:
		return "Home"
	}
}

// Home feed rows, in display order
const (
	rowTrendingMovies = iota
	rowTrendingTV
	rowTopRatedMovies
	rowTopRatedTV
	homeRowCount
)

var homeRowNames = [homeRowCount]string{"Trending Movies", "Trending TV", "Top Rated Movies", "Top Rated TV"}

// Layout
const (
	// tab bar, blank line, footer
	ChromeHeight = 3
	heroHeight   = 6
)

// TrailerPlayer opens a trailer by video id
type TrailerPlayer interface {
	PlayTrailer(videoID string) error
}

// Controllers bundles the state machines behind each screen
type Controllers struct {
	Home     *controller.Home
	Search   *controller.Search
	Upcoming *controller.Upcoming
	Detail   *controller.Detail
	Saved    *controller.Saved
}

type subscriptions struct {
	home     <-chan controller.HomeState
	search   <-chan controller.SearchState
	upcoming <-chan controller.Async[[]domain.Title]
	detail   <-chan controller.DetailState
	saved    <-chan controller.SavedState

	stops []func()
}

// Model is the main Bubble Tea model for the application
type Model struct {
	ctl    Controllers
	player TrailerPlayer
	subs   subscriptions

	Tab          Tab
	DetailOpen   bool
	detailTarget domain.Title
	ShowHelp     bool
	Ready        bool

	// Dimensions
	Width  int
	Height int

	// Screen state, mirrored from the controllers
	home     controller.HomeState
	search   controller.SearchState
	upcoming controller.Async[[]domain.Title]
	detail   controller.DetailState
	saved    controller.SavedState

	// Home
	homeRow   int
	homeLists [homeRowCount]*components.TitleList

	// Search
	searchStarted bool
	searchFocused bool
	searchInput   textinput.Model
	searchList    *components.TitleList

	// Upcoming
	upcomingList *components.TitleList

	// Saved
	filtering   bool
	filterInput textinput.Model
	savedList   *components.TitleList

	// Footer
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int
}

// NewModel creates a new application model. The controllers must outlive the program.
func NewModel(ctl Controllers, player TrailerPlayer) Model {
	si := textinput.New()
	si.Placeholder = "search titles..."
	si.Prompt = "/ "
	si.PromptStyle = styles.PromptStyle
	si.TextStyle = styles.InputTextStyle

	fi := textinput.New()
	fi.Placeholder = "filter saved..."
	fi.Prompt = "/ "
	fi.PromptStyle = styles.PromptStyle
	fi.TextStyle = styles.InputTextStyle

	m := Model{
		ctl:          ctl,
		player:       player,
		searchInput:  si,
		searchList:   components.NewTitleList("No results"),
		upcomingList: components.NewTitleList("Nothing upcoming"),
		filterInput:  fi,
		savedList:    components.NewTitleList("No saved titles. Press s on a title to save it."),
	}
	for i := range m.homeLists {
		m.homeLists[i] = components.NewTitleList("Nothing here")
	}

	var stop [5]func()
	m.subs.home, stop[0] = ctl.Home.Subscribe()
	m.subs.search, stop[1] = ctl.Search.Subscribe()
	m.subs.upcoming, stop[2] = ctl.Upcoming.Subscribe()
	m.subs.detail, stop[3] = ctl.Detail.Subscribe()
	m.subs.saved, stop[4] = ctl.Saved.Subscribe()
	m.subs.stops = stop[:]
	return m
}

// Unsubscribe stops following the controllers. Pending listen commands then
// return nil.
func (m Model) Unsubscribe() {
	for _, stop := range m.subs.stops {
		stop()
	}
}

// Init starts following every controller and loads the home feed
func (m Model) Init() tea.Cmd {
	m.ctl.Home.Load()
	m.ctl.Saved.Start()
	return tea.Batch(
		m.listenHome(),
		m.listenSearch(),
		m.listenUpcoming(),
		m.listenDetail(),
		m.listenSaved(),
		TickCmd(100*time.Millisecond),
	)
}

func (m Model) listenHome() tea.Cmd {
	return listen(m.subs.home, func(s controller.HomeState) tea.Msg { return HomeStateMsg{s} })
}

func (m Model) listenSearch() tea.Cmd {
	return listen(m.subs.search, func(s controller.SearchState) tea.Msg { return SearchStateMsg{s} })
}

func (m Model) listenUpcoming() tea.Cmd {
	return listen(m.subs.upcoming, func(s controller.Async[[]domain.Title]) tea.Msg { return UpcomingStateMsg{s} })
}

func (m Model) listenDetail() tea.Cmd {
	return listen(m.subs.detail, func(s controller.DetailState) tea.Msg { return DetailStateMsg{s} })
}

func (m Model) listenSaved() tea.Cmd {
	return listen(m.subs.saved, func(s controller.SavedState) tea.Msg { return SavedStateMsg{s} })
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case HomeStateMsg:
		m.home = msg.State
		m.homeLists[rowTrendingMovies].SetItems(msg.State.TrendingMovies)
		m.homeLists[rowTrendingTV].SetItems(msg.State.TrendingTV)
		m.homeLists[rowTopRatedMovies].SetItems(msg.State.TopRatedMovies)
		m.homeLists[rowTopRatedTV].SetItems(msg.State.TopRatedTV)
		return m, m.listenHome()

	case SearchStateMsg:
		m.search = msg.State
		if msg.State.Status == controller.StatusSuccess {
			m.searchList.SetItems(msg.State.Data)
			m.searchList.SetHighlight(msg.State.Query)
		}
		return m, m.listenSearch()

	case UpcomingStateMsg:
		m.upcoming = msg.State
		if msg.State.Status == controller.StatusSuccess {
			m.upcomingList.SetItems(msg.State.Data)
		}
		return m, m.listenUpcoming()

	case DetailStateMsg:
		prev := m.detail.Save.Status
		m.detail = msg.State
		cmd := m.listenDetail()
		if prev != msg.State.Save.Status && msg.State.Save.Status == controller.SaveError {
			m.StatusMsg = "Save failed: " + msg.State.Save.Message
			m.StatusIsErr = true
			return m, tea.Batch(cmd, ClearStatusCmd(5*time.Second))
		}
		return m, cmd

	case SavedStateMsg:
		m.saved = msg.State
		m.applySavedFilter()
		cmd := m.listenSaved()
		if msg.State.Err != nil {
			m.StatusMsg = msg.State.Err.Error()
			m.StatusIsErr = true
			return m, tea.Batch(cmd, ClearStatusCmd(5*time.Second))
		}
		return m, cmd

	case TrailerLaunchedMsg:
		m.StatusMsg = "Playing trailer: " + msg.Title
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}
	if m.DetailOpen {
		return m.handleDetailKeys(msg)
	}
	if m.Tab == TabSearch && m.searchFocused {
		return m.handleSearchInput(msg)
	}
	if m.Tab == TabSaved && m.filtering {
		return m.handleFilterInput(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil
	case key.Matches(msg, Keys.NextTab):
		m.switchTab((m.Tab + 1) % tabCount)
		return m, nil
	case key.Matches(msg, Keys.PrevTab):
		m.switchTab((m.Tab + tabCount - 1) % tabCount)
		return m, nil
	case key.Matches(msg, Keys.TabHome):
		m.switchTab(TabHome)
		return m, nil
	case key.Matches(msg, Keys.TabSearch):
		m.switchTab(TabSearch)
		return m, nil
	case key.Matches(msg, Keys.TabUpcoming):
		m.switchTab(TabUpcoming)
		return m, nil
	case key.Matches(msg, Keys.TabSaved):
		m.switchTab(TabSaved)
		return m, nil
	case key.Matches(msg, Keys.Enter):
		if t, ok := m.activeList().Selected(); ok {
			m.openDetail(t)
		}
		return m, nil
	}

	switch m.Tab {
	case TabHome:
		switch {
		case key.Matches(msg, Keys.NextSection):
			m.homeRow = (m.homeRow + 1) % homeRowCount
			return m, nil
		case key.Matches(msg, Keys.PrevSection):
			m.homeRow = (m.homeRow + homeRowCount - 1) % homeRowCount
			return m, nil
		case key.Matches(msg, Keys.Retry):
			m.ctl.Home.Retry()
			return m, nil
		}
	case TabSearch:
		switch {
		case key.Matches(msg, Keys.Focus):
			m.searchFocused = true
			return m, m.searchInput.Focus()
		case key.Matches(msg, Keys.ToggleKind):
			m.ctl.Search.ToggleKind()
			return m, nil
		}
	case TabUpcoming:
		if key.Matches(msg, Keys.Retry) {
			m.ctl.Upcoming.Retry()
			return m, nil
		}
	case TabSaved:
		switch {
		case key.Matches(msg, Keys.Focus):
			m.filtering = true
			return m, m.filterInput.Focus()
		case key.Matches(msg, Keys.Delete):
			if t, ok := m.savedList.Selected(); ok {
				m.ctl.Saved.Delete(t)
				m.StatusMsg = "Removed: " + t.DisplayTitle()
				m.StatusIsErr = false
				return m, ClearStatusCmd(3 * time.Second)
			}
			return m, nil
		}
	}

	m.activeList().Update(msg, components.DefaultListKeyMap())
	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searchFocused = false
		m.searchInput.Blur()
		return m, nil
	}
	if m.searchList.Update(msg, components.ArrowListKeyMap()) {
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != before {
		m.ctl.Search.SetQuery(v)
	}
	return m, cmd
}

func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applySavedFilter()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}
	if m.savedList.Update(msg, components.ArrowListKeyMap()) {
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applySavedFilter()
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back), key.Matches(msg, Keys.Quit):
		m.DetailOpen = false
		return m, nil
	case key.Matches(msg, Keys.Save):
		m.ctl.Detail.Save()
		return m, nil
	case key.Matches(msg, Keys.Retry):
		if m.detail.Title.Status == controller.StatusError {
			m.ctl.Detail.Load(m.detailTarget.ID, m.detailTarget.Kind)
		}
		return m, nil
	case key.Matches(msg, Keys.Play):
		if m.detail.Video.Status != controller.StatusSuccess {
			return m, func() tea.Msg {
				return StatusMsg{Message: "No trailer available", IsError: true}
			}
		}
		return m, PlayTrailerCmd(m.player, m.detail.Video.Data, m.detail.Title.Data.DisplayTitle())
	}
	return m, nil
}

// switchTab activates t, triggering its first load
func (m *Model) switchTab(t Tab) {
	m.Tab = t
	switch t {
	case TabSearch:
		if !m.searchStarted {
			m.searchStarted = true
			m.ctl.Search.Start()
		}
	case TabUpcoming:
		m.ctl.Upcoming.Load()
	}
}

func (m *Model) openDetail(t domain.Title) {
	m.DetailOpen = true
	m.detailTarget = t
	m.ctl.Detail.Load(t.ID, t.Kind)
}

func (m *Model) activeList() *components.TitleList {
	switch m.Tab {
	case TabSearch:
		return m.searchList
	case TabUpcoming:
		return m.upcomingList
	case TabSaved:
		return m.savedList
	default:
		return m.homeLists[m.homeRow]
	}
}

func (m *Model) applySavedFilter() {
	q := m.filterInput.Value()
	m.savedList.SetItems(controller.FilterTitles(m.saved.Titles, q))
	m.savedList.SetHighlight(q)
}

func (m *Model) updateLayout() {
	width := m.Width - 2
	body := m.Height - ChromeHeight

	for _, l := range m.homeLists {
		l.SetSize(width, body-heroHeight-2)
	}
	m.searchList.SetSize(width, body-2)
	m.upcomingList.SetSize(width, body-1)
	m.savedList.SetSize(width, body-2)
	m.searchInput.Width = width - 4
	m.filterInput.Width = width - 4
}

// loading reports whether the active screen is waiting on the network
func (m Model) loading() bool {
	if m.DetailOpen {
		return m.detail.Title.Status == controller.StatusLoading || m.detail.Video.Status == controller.StatusLoading
	}
	switch m.Tab {
	case TabHome:
		return m.home.Phase == controller.PhaseLoading
	case TabSearch:
		return m.search.Status == controller.StatusLoading
	case TabUpcoming:
		return m.upcoming.Status == controller.StatusLoading
	}
	return false
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
