package controller

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/vidda/internal/domain"
)

// FilterTitles returns the titles whose display title fuzzily contains query,
// best matches first. Matching ignores case and diacritics. An empty query
// returns titles unchanged.
func FilterTitles(titles []domain.Title, query string) []domain.Title {
	query = strings.TrimSpace(query)
	if query == "" {
		return titles
	}

	names := make([]string, len(titles))
	for i, t := range titles {
		names[i] = t.DisplayTitle()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]domain.Title, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, titles[r.OriginalIndex])
	}
	return out
}
