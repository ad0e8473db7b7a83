package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/tui/styles"
)

// TitleList is a scrollable list of titles with optional match highlighting.
type TitleList struct {
	items []domain.Title

	cursor int
	offset int

	width  int
	height int

	highlight string // query whose matched characters are emphasised
	emptyText string
}

// NewTitleList creates an empty list.
func NewTitleList(emptyText string) *TitleList {
	return &TitleList{emptyText: emptyText}
}

// SetItems replaces the items, keeping the cursor on the same title when possible.
func (l *TitleList) SetItems(items []domain.Title) {
	var selectedID int
	if sel, ok := l.Selected(); ok {
		selectedID = sel.ID
	}
	l.items = items
	l.cursor = 0
	for i, t := range items {
		if t.ID == selectedID {
			l.cursor = i
			break
		}
	}
	l.clamp()
}

// Items returns the items being shown.
func (l *TitleList) Items() []domain.Title { return l.items }

// SetHighlight sets the query whose matches are emphasised.
func (l *TitleList) SetHighlight(q string) { l.highlight = strings.TrimSpace(q) }

// SetSize sets the rendered width and number of rows.
func (l *TitleList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clamp()
}

// Selected returns the title under the cursor.
func (l *TitleList) Selected() (domain.Title, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return domain.Title{}, false
	}
	return l.items[l.cursor], true
}

// Cursor returns the cursor position.
func (l *TitleList) Cursor() int { return l.cursor }

// Update handles navigation keys and reports whether the key was consumed.
func (l *TitleList) Update(msg tea.KeyMsg, km ListKeyMap) bool {
	switch {
	case key.Matches(msg, km.Up):
		l.cursor--
	case key.Matches(msg, km.Down):
		l.cursor++
	case key.Matches(msg, km.Home):
		l.cursor = 0
	case key.Matches(msg, km.End):
		l.cursor = len(l.items) - 1
	case key.Matches(msg, km.HalfUp):
		l.cursor -= l.visibleRows() / 2
	case key.Matches(msg, km.HalfDown):
		l.cursor += l.visibleRows() / 2
	default:
		return false
	}
	l.clamp()
	return true
}

func (l *TitleList) visibleRows() int {
	if l.height < 1 {
		return 1
	}
	return l.height
}

func (l *TitleList) clamp() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible rows.
func (l *TitleList) View() string {
	if len(l.items) == 0 {
		return styles.DimStyle.Render(l.emptyText)
	}

	width := l.width
	if width < 20 {
		width = 20
	}
	end := l.offset + l.visibleRows()
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.items[i], i == l.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (l *TitleList) renderRow(t domain.Title, selected bool, width int) string {
	rowStyle := styles.NormalItemStyle
	if selected {
		rowStyle = styles.SelectedItemStyle
	}

	meta := fmt.Sprintf(" %s %3d%%", yearOrDash(t), t.RatingPercent())
	nameWidth := width - lipgloss.Width(meta) - 2
	name := styles.Truncate(t.DisplayTitle(), nameWidth)

	var rendered string
	if l.highlight != "" {
		var matched []int
		if m := fuzzy.Find(l.highlight, []string{name}); len(m) > 0 {
			matched = m[0].MatchedIndexes
		}
		rendered = styles.RenderHighlighted(name, matched, selected)
	} else {
		rendered = rowStyle.Render(name)
	}

	pad := nameWidth - lipgloss.Width(name)
	if pad < 0 {
		pad = 0
	}
	score := lipgloss.NewStyle().Foreground(styles.RatingColor(t.RatingPercent()))
	if selected {
		score = score.Background(styles.SlateLight)
	}
	return rowStyle.Render(" ") + rendered + rowStyle.Render(strings.Repeat(" ", pad)) +
		score.Render(meta) + rowStyle.Render(" ")
}

func yearOrDash(t domain.Title) string {
	if y := t.Year(); y != "" {
		return y
	}
	return "----"
}
