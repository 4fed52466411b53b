package state

import (
	"sync"

	"github.com/reelterm/reel/internal/domain"
)

// listing is the mutable per-category buffer behind the snapshots.
type listing struct {
	items       []domain.MediaItem
	loading     bool
	err         string
	currentPage int
	query       string
}

// CatalogState holds one page-accumulating buffer per listing category
// plus the transient selected item. All transitions are pure state
// changes with no I/O; categories mutate disjoint slices and never
// interact. Catalog data is ephemeral and deliberately not persisted.
type CatalogState struct {
	mu       sync.RWMutex
	listings map[domain.Category]*listing
	selected *domain.MediaItem

	notifier
}

// NewCatalogState creates a catalog state with one empty listing per
// declared category.
func NewCatalogState() *CatalogState {
	listings := make(map[domain.Category]*listing, len(domain.Categories()))
	for _, c := range domain.Categories() {
		listings[c] = &listing{}
	}
	return &CatalogState{listings: listings}
}

// BeginFetch marks the category as loading. Items, error and page are
// untouched; overlapping fetches simply re-assert the flag.
func (s *CatalogState) BeginFetch(category domain.Category) {
	s.mu.Lock()
	l, ok := s.listings[category]
	if !ok {
		s.mu.Unlock()
		return
	}
	l.loading = true
	s.mu.Unlock()

	s.notify()
}

// FetchSucceeded merges a fetched page. Page 1 replaces the buffer
// (initial load or refresh); later pages append in arrival order. The
// error is cleared and currentPage records the merged page.
func (s *CatalogState) FetchSucceeded(category domain.Category, items []domain.MediaItem, page int) {
	s.mu.Lock()
	l, ok := s.listings[category]
	if !ok {
		s.mu.Unlock()
		return
	}
	if page == 1 || !category.Accumulates() {
		l.items = append([]domain.MediaItem(nil), items...)
	} else {
		l.items = append(l.items, items...)
	}
	l.loading = false
	l.err = ""
	l.currentPage = page
	s.mu.Unlock()

	s.notify()
}

// FetchFailed records a failure. Items and currentPage are preserved so
// an accumulated list survives a failed "load more".
func (s *CatalogState) FetchFailed(category domain.Category, message string) {
	s.mu.Lock()
	l, ok := s.listings[category]
	if !ok {
		s.mu.Unlock()
		return
	}
	l.loading = false
	l.err = message
	s.mu.Unlock()

	s.notify()
}

// SearchSucceeded replaces the search buffer wholesale and records the
// query that produced it. Search never accumulates pages.
func (s *CatalogState) SearchSucceeded(items []domain.MediaItem, query string) {
	s.mu.Lock()
	l := s.listings[domain.CategorySearch]
	l.items = append([]domain.MediaItem(nil), items...)
	l.loading = false
	l.err = ""
	l.query = query
	s.mu.Unlock()

	s.notify()
}

// ClearSearch resets the search category to its empty initial state.
func (s *CatalogState) ClearSearch() {
	s.mu.Lock()
	s.listings[domain.CategorySearch] = &listing{}
	s.mu.Unlock()

	s.notify()
}

// Select stores the transient "currently viewed" item for the detail
// view. Passing nil clears it.
func (s *CatalogState) Select(item *domain.MediaItem) {
	s.mu.Lock()
	if item == nil {
		s.selected = nil
	} else {
		copied := *item
		s.selected = &copied
	}
	s.mu.Unlock()

	s.notify()
}

// Selected returns a copy of the currently viewed item, or nil.
func (s *CatalogState) Selected() *domain.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	copied := *s.selected
	return &copied
}

// Snapshot returns a defensive copy of one category's state.
func (s *CatalogState) Snapshot(category domain.Category) domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[category]
	if !ok {
		return domain.Listing{}
	}
	return domain.Listing{
		Items:       append([]domain.MediaItem(nil), l.items...),
		Loading:     l.loading,
		Err:         l.err,
		CurrentPage: l.currentPage,
		Query:       l.query,
	}
}
