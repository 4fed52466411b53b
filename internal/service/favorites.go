package service

import (
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/state"
)

// FavoritesService wraps the favorites state with the operations the UI
// triggers. Persistence happens behind the state's change notifications;
// nothing here touches storage.
type FavoritesService struct {
	state  *state.FavoritesState
	logger *slog.Logger
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(st *state.FavoritesState, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoritesService{state: st, logger: logger}
}

// Toggle adds the item to favorites, or removes it when already marked.
// Returns true when the item is a favorite after the call.
func (s *FavoritesService) Toggle(item domain.MediaItem) bool {
	if s.state.Contains(item.ID, item.Type) {
		s.state.Remove(item.ID, item.Type)
		s.logger.Info("favorite removed", "id", item.ID, "type", item.Type)
		return false
	}
	s.state.Add(domain.FavoriteOf(item))
	s.logger.Info("favorite added", "id", item.ID, "type", item.Type)
	return true
}

// IsFavorite reports whether the item is currently marked.
func (s *FavoritesService) IsFavorite(item domain.MediaItem) bool {
	return s.state.Contains(item.ID, item.Type)
}

// Remove deletes one favorite; absent entries are a no-op.
func (s *FavoritesService) Remove(id int64, media domain.MediaType) {
	s.state.Remove(id, media)
}

// Clear empties the favorites list.
func (s *FavoritesService) Clear() {
	s.state.Clear()
	s.logger.Info("favorites cleared")
}

// Entries returns all favorites in insertion order.
func (s *FavoritesService) Entries() []domain.FavoriteEntry {
	return s.state.Entries()
}

// Filter returns favorites whose titles fuzzily match the query, best
// match first. A blank query returns everything in insertion order.
func (s *FavoritesService) Filter(query string) []domain.FavoriteEntry {
	entries := s.state.Entries()
	if query == "" {
		return entries
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	matched := make([]domain.FavoriteEntry, 0, len(ranks))
	for _, r := range ranks {
		matched = append(matched, entries[r.OriginalIndex])
	}
	return matched
}
