package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/state"
)

// User-visible error messages. Network and upstream failures stay
// distinguishable in logs; both read as "try again" to the user.
const (
	msgNetworkError = "Network error. Please check your connection."
	msgFetchError   = "Failed to fetch data. Please try again."
)

// CatalogService mediates between the remote catalog and the catalog
// state. It holds no listing data of its own; its only bookkeeping is
// the per-category sequence counters that guard against a stale
// response overwriting a fresher one when fetches overlap.
type CatalogService struct {
	repo   domain.CatalogRepository
	state  *state.CatalogState
	logger *slog.Logger

	mu      sync.Mutex
	issued  map[domain.Category]uint64
	applied map[domain.Category]uint64
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.CatalogRepository, st *state.CatalogState, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:    repo,
		state:   st,
		logger:  logger,
		issued:  make(map[domain.Category]uint64),
		applied: make(map[domain.Category]uint64),
	}
}

// begin tags a new request with the next sequence number for the
// category and flips the loading flag.
func (s *CatalogService) begin(category domain.Category) uint64 {
	s.mu.Lock()
	s.issued[category]++
	seq := s.issued[category]
	s.mu.Unlock()

	s.state.BeginFetch(category)
	return seq
}

// tryApply reports whether a response with the given sequence may be
// applied, and if so records it as the latest applied. Responses older
// than the last applied sequence are discarded.
func (s *CatalogService) tryApply(category domain.Category, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied[category] {
		return false
	}
	s.applied[category] = seq
	return true
}

// LoadCategory fetches one page of a listing category and dispatches
// the outcome into the catalog state. Page 1 replaces accumulated
// results; later pages append.
func (s *CatalogService) LoadCategory(ctx context.Context, category domain.Category, media domain.MediaType, page int) error {
	if !category.Valid() || category == domain.CategorySearch {
		return fmt.Errorf("not a listing category: %q", category)
	}
	if page < 1 {
		page = 1
	}

	seq := s.begin(category)

	items, err := s.fetchListing(ctx, category, media, page)
	if err != nil {
		if !s.tryApply(category, seq) {
			s.logger.Debug("discarding stale failure", "category", category, "seq", seq)
			return err
		}
		s.logger.Error("category fetch failed", "category", category, "page", page, "error", err)
		s.state.FetchFailed(category, userMessage(err))
		return err
	}

	if !s.tryApply(category, seq) {
		s.logger.Debug("discarding stale page", "category", category, "page", page, "seq", seq)
		return nil
	}

	s.state.FetchSucceeded(category, items, page)
	s.logger.Info("category loaded", "category", category, "page", page, "count", len(items))
	return nil
}

func (s *CatalogService) fetchListing(ctx context.Context, category domain.Category, media domain.MediaType, page int) ([]domain.MediaItem, error) {
	switch category {
	case domain.CategoryTrending:
		return s.repo.Trending(ctx, media, page)
	case domain.CategoryPopular:
		return s.repo.Popular(ctx, media, page)
	case domain.CategoryTopRated:
		return s.repo.TopRated(ctx, media, page)
	default:
		return nil, fmt.Errorf("not a listing category: %q", category)
	}
}

// Search runs a free-text search. A blank query short-circuits to
// clearing the search state with no network call.
func (s *CatalogService) Search(ctx context.Context, media domain.MediaType, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		s.state.ClearSearch()
		return nil
	}

	seq := s.begin(domain.CategorySearch)

	items, err := s.repo.Search(ctx, media, query, 1)
	if err != nil {
		if !s.tryApply(domain.CategorySearch, seq) {
			return err
		}
		s.logger.Error("search failed", "query", query, "error", err)
		s.state.FetchFailed(domain.CategorySearch, userMessage(err))
		return err
	}

	if !s.tryApply(domain.CategorySearch, seq) {
		s.logger.Debug("discarding stale search results", "query", query, "seq", seq)
		return nil
	}

	s.state.SearchSucceeded(items, query)
	s.logger.Info("search completed", "query", query, "count", len(items))
	return nil
}

// ClearSearch resets the search category.
func (s *CatalogService) ClearSearch() {
	s.state.ClearSearch()
}

// SelectItem stores the item for the detail view and fetches its full
// record from the catalog.
func (s *CatalogService) SelectItem(ctx context.Context, item domain.MediaItem) (*domain.MediaDetails, error) {
	s.state.Select(&item)

	details, err := s.repo.Details(ctx, item.Type, item.ID)
	if err != nil {
		s.logger.Error("details fetch failed", "id", item.ID, "type", item.Type, "error", err)
		return nil, err
	}
	return details, nil
}

// ClearSelection drops the transient detail item.
func (s *CatalogService) ClearSelection() {
	s.state.Select(nil)
}

// userMessage collapses a fetch error into a human-readable string.
func userMessage(err error) string {
	if errors.Is(err, domain.ErrCatalogUnreachable) {
		return msgNetworkError
	}
	return msgFetchError
}
