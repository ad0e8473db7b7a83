package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/vidda/internal/controller"
	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/tui/styles"
)

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.ShowHelp {
		return m.renderHelp()
	}

	var body string
	if m.DetailOpen {
		body = m.renderDetail()
	} else {
		switch m.Tab {
		case TabHome:
			body = m.renderHome()
		case TabSearch:
			body = m.renderSearch()
		case TabUpcoming:
			body = m.renderUpcoming()
		case TabSaved:
			body = m.renderSaved()
		}
	}

	body = lipgloss.NewStyle().
		Width(m.Width).
		Height(m.Height - ChromeHeight).
		MaxHeight(m.Height - ChromeHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		body,
		m.renderFooter(),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount+1)
	tabs = append(tabs, styles.AccentStyle.Bold(true).Render("vidda "))
	for t := TabHome; t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", t+1, t)
		if t == m.Tab && !m.DetailOpen {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderHome() string {
	if m.home.Phase != controller.PhaseReady {
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading home feed...")
	}

	var sections []string
	if m.home.Err != nil {
		sections = append(sections, RenderError(m.home.Err, m.Width-2)+styles.DimStyle.Render("  (r to retry)"))
	}
	if m.home.Hero != nil {
		sections = append(sections, m.renderHero(*m.home.Hero))
	}

	var header []string
	for i, name := range homeRowNames {
		label := fmt.Sprintf("%s (%d)", name, len(m.homeLists[i].Items()))
		if i == m.homeRow {
			header = append(header, styles.ActiveTabStyle.Render(label))
		} else {
			header = append(header, styles.InactiveTabStyle.Render(label))
		}
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, header...))
	sections = append(sections, m.homeLists[m.homeRow].View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHero(t domain.Title) string {
	width := m.Width - 4
	if width < 20 {
		width = 20
	}
	lines := []string{
		styles.TitleStyle.Render(styles.Truncate(t.DisplayTitle(), width-12)) + "  " + renderRating(t),
	}
	overview := styles.Wrap(t.Overview, width-2)
	if len(overview) > heroHeight-3 {
		overview = overview[:heroHeight-3]
	}
	for _, l := range overview {
		lines = append(lines, styles.SubtitleStyle.Render(l))
	}
	return styles.HeroStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSearch() string {
	kind := m.ctl.Search.Kind()
	header := m.searchInput.View() + "  " +
		styles.BadgeStyle.Render(kind.Label()) + " " +
		styles.DimBadgeStyle.Render("t: "+kind.Other().Label())

	var body string
	switch m.search.Status {
	case controller.StatusLoading:
		if len(m.searchList.Items()) == 0 {
			body = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Searching...")
		} else {
			body = m.searchList.View()
		}
	case controller.StatusError:
		body = RenderError(m.search.Err, m.Width-2)
	case controller.StatusInitial:
		body = styles.DimStyle.Render("Press / to search")
	default:
		body = m.searchList.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (m Model) renderUpcoming() string {
	switch m.upcoming.Status {
	case controller.StatusInitial, controller.StatusLoading:
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading upcoming movies...")
	case controller.StatusError:
		return RenderError(m.upcoming.Err, m.Width-2) + styles.DimStyle.Render("  (r to retry)")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.SubtitleStyle.Render(countLabel(len(m.upcoming.Data), "upcoming movie")),
		m.upcomingList.View(),
	)
}

func (m Model) renderSaved() string {
	var header string
	if m.filtering || m.filterInput.Value() != "" {
		header = m.filterInput.View()
	} else {
		header = styles.SubtitleStyle.Render(countLabel(len(m.saved.Titles), "saved title"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.savedList.View())
}

func (m Model) renderDetail() string {
	width := m.Width - 8
	if width < 30 {
		width = 30
	}

	d := m.detail
	switch d.Title.Status {
	case controller.StatusInitial, controller.StatusLoading:
		return styles.DetailStyle.Width(width).Render(
			RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading "+m.detailTarget.DisplayTitle()+"..."))
	case controller.StatusError:
		return styles.DetailStyle.Width(width).Render(
			RenderError(d.Title.Err, width-6) + "\n\n" + styles.DimStyle.Render("r retry · esc back"))
	}

	t := d.Title.Data
	var lines []string

	title := styles.TitleStyle.Render(t.DisplayTitle())
	if d.Saved {
		title += "  " + styles.BadgeStyle.Render("saved")
	}
	lines = append(lines, title)

	meta := []string{renderRating(t)}
	if y := t.Year(); y != "" {
		meta = append(meta, styles.SubtitleStyle.Render(y))
	}
	kind := "Movie"
	if t.Kind == domain.MediaKindTV {
		kind = "TV"
	}
	meta = append(meta, styles.DimBadgeStyle.Render(kind))
	lines = append(lines, strings.Join(meta, "  "), "")

	if t.Overview != "" {
		lines = append(lines, styles.Wrap(t.Overview, width-6)...)
	} else {
		lines = append(lines, styles.DimStyle.Render("No overview available."))
	}
	lines = append(lines, "")

	if t.HasPoster() {
		lines = append(lines, styles.DimStyle.Render("Poster  ")+styles.Truncate(t.PosterURL, width-14))
	}
	lines = append(lines, styles.DimStyle.Render("Trailer ")+m.renderTrailerStatus(), "")
	lines = append(lines, m.renderSaveStatus())

	return styles.DetailStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTrailerStatus() string {
	v := m.detail.Video
	switch v.Status {
	case controller.StatusLoading:
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("finding trailer...")
	case controller.StatusSuccess:
		return styles.SuccessStyle.Render("available") + styles.DimStyle.Render("  (p to play)")
	case controller.StatusError:
		return styles.ErrorStyle.Render(v.Message())
	}
	return styles.DimStyle.Render("-")
}

func (m Model) renderSaveStatus() string {
	s := m.detail.Save
	switch s.Status {
	case controller.SaveSaving:
		return RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Saving...")
	case controller.SaveSuccess:
		return styles.SuccessStyle.Render("Saved!")
	case controller.SaveError:
		return styles.ErrorStyle.Render("Save failed: " + s.Message)
	}
	if m.detail.Saved {
		return styles.DimStyle.Render("s save again · esc back")
	}
	return styles.AccentStyle.Render("s") + styles.DimStyle.Render(" save · esc back")
}

func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	} else if m.loading() {
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading...")
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      ACTIONS
  j/k        Up/down               Enter  Open details
  g/G        First/last item       s      Save title
  Ctrl+u/d   Scroll half page      p      Play trailer
  h/l        Home section          d      Remove saved title
  1-4        Jump to tab           r      Retry
  Tab        Next tab              q      Quit

SEARCH                          OTHER
  /          Focus search          ?      This help
  t          Movies / TV shows     Esc    Close / Cancel
  /          Filter saved titles

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

func renderRating(t domain.Title) string {
	p := t.RatingPercent()
	if p <= 0 {
		return styles.DimStyle.Render("NR")
	}
	return lipgloss.NewStyle().Foreground(styles.RatingColor(p)).Bold(true).Render(fmt.Sprintf("%d%%", p))
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.Spinner(frame)
}

// RenderError renders an error message
func RenderError(err error, width int) string {
	return styles.ErrorStyle.Render(styles.Truncate("Error: "+domain.UserMessage(err), width))
}
