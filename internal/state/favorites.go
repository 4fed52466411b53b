package state

import (
	"sync"
	"time"

	"github.com/reelterm/reel/internal/domain"
)

// FavoritesState holds the deduplicated, insertion-ordered collection of
// user-marked items. Entries are keyed by (id, media type) so a movie
// and a show sharing a numeric id never collide.
type FavoritesState struct {
	mu      sync.RWMutex
	entries []domain.FavoriteEntry
	index   map[string]int // Key() -> position in entries

	now func() time.Time

	notifier
}

// NewFavoritesState creates an empty favorites state.
func NewFavoritesState() *FavoritesState {
	return &FavoritesState{
		index: make(map[string]int),
		now:   time.Now,
	}
}

// Add inserts the entry unless one with the same key already exists.
// AddedAt is stamped at insertion; a caller-supplied timestamp is
// ignored. Returns true when the entry was inserted.
func (s *FavoritesState) Add(entry domain.FavoriteEntry) bool {
	s.mu.Lock()
	if _, exists := s.index[entry.Key()]; exists {
		s.mu.Unlock()
		return false
	}
	entry.AddedAt = s.now()
	s.index[entry.Key()] = len(s.entries)
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.notify()
	return true
}

// Remove deletes the entry with the matching identity if present.
// Removing an absent entry is a no-op, never an error.
func (s *FavoritesState) Remove(id int64, media domain.MediaType) bool {
	key := domain.FavoriteEntry{ID: id, Type: media}.Key()

	s.mu.Lock()
	pos, exists := s.index[key]
	if !exists {
		s.mu.Unlock()
		return false
	}
	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	delete(s.index, key)
	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].Key()] = i
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// Contains reports whether an entry with the given identity exists.
func (s *FavoritesState) Contains(id int64, media domain.MediaType) bool {
	key := domain.FavoriteEntry{ID: id, Type: media}.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.index[key]
	return exists
}

// Clear empties the collection.
func (s *FavoritesState) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.index = make(map[string]int)
	s.mu.Unlock()

	s.notify()
}

// ReplaceAll overwrites the collection wholesale, preserving the order
// and timestamps of the supplied entries. Used once at startup to
// hydrate from persisted storage. Duplicate keys keep the first entry.
func (s *FavoritesState) ReplaceAll(entries []domain.FavoriteEntry) {
	s.mu.Lock()
	s.entries = nil
	s.index = make(map[string]int, len(entries))
	for _, e := range entries {
		if _, exists := s.index[e.Key()]; exists {
			continue
		}
		s.index[e.Key()] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	s.mu.Unlock()

	s.notify()
}

// Entries returns a defensive copy of the collection in insertion order.
func (s *FavoritesState) Entries() []domain.FavoriteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.FavoriteEntry(nil), s.entries...)
}

// Len returns the number of entries.
func (s *FavoritesState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
