package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/reelterm/reel/internal/domain"
)

// listIndex implements fuzzy.Source over a catalog listing for
// zero-allocation matching against pre-computed lowercase titles.
type listIndex struct {
	lowerTitles []string
}

func (idx listIndex) String(i int) string { return idx.lowerTitles[i] }
func (idx listIndex) Len() int            { return len(idx.lowerTitles) }

// filterItems narrows items to fuzzy title matches, best match first.
// A blank query returns items unchanged.
func filterItems(items []domain.MediaItem, query string) []domain.MediaItem {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}

	idx := listIndex{lowerTitles: make([]string, len(items))}
	for i, item := range items {
		idx.lowerTitles[i] = strings.ToLower(item.Title)
	}

	matches := fuzzy.FindFrom(query, idx)
	out := make([]domain.MediaItem, len(matches))
	for i, m := range matches {
		out[i] = items[m.Index]
	}
	return out
}
