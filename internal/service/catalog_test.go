package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/log"
	"github.com/reelterm/reel/internal/state"
)

// fakeRepo scripts catalog responses per call
type fakeRepo struct {
	mu      sync.Mutex
	results [][]domain.MediaItem
	errs    []error
	calls   int

	searchQueries []string
}

func (f *fakeRepo) next() ([]domain.MediaItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	var items []domain.MediaItem
	var err error
	if i < len(f.results) {
		items = f.results[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return items, err
}

func (f *fakeRepo) Trending(ctx context.Context, media domain.MediaType, page int) ([]domain.MediaItem, error) {
	return f.next()
}

func (f *fakeRepo) Popular(ctx context.Context, media domain.MediaType, page int) ([]domain.MediaItem, error) {
	return f.next()
}

func (f *fakeRepo) TopRated(ctx context.Context, media domain.MediaType, page int) ([]domain.MediaItem, error) {
	return f.next()
}

func (f *fakeRepo) Search(ctx context.Context, media domain.MediaType, query string, page int) ([]domain.MediaItem, error) {
	f.mu.Lock()
	f.searchQueries = append(f.searchQueries, query)
	f.mu.Unlock()
	return f.next()
}

func (f *fakeRepo) Details(ctx context.Context, media domain.MediaType, id int64) (*domain.MediaDetails, error) {
	items, err := f.next()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrUpstream
	}
	return &domain.MediaDetails{MediaItem: items[0]}, nil
}

func movie(id int64, title string) domain.MediaItem {
	return domain.MediaItem{ID: id, Type: domain.MediaTypeMovie, Title: title}
}

func newCatalogService(repo *fakeRepo) (*CatalogService, *state.CatalogState) {
	st := state.NewCatalogState()
	return NewCatalogService(repo, st, log.NullLogger()), st
}

func TestLoadCategorySuccess(t *testing.T) {
	repo := &fakeRepo{results: [][]domain.MediaItem{{movie(1, "a"), movie(2, "b")}}}
	svc, st := newCatalogService(repo)

	if err := svc.LoadCategory(context.Background(), domain.CategoryPopular, domain.MediaTypeMovie, 1); err != nil {
		t.Fatalf("LoadCategory() error = %v", err)
	}

	snap := st.Snapshot(domain.CategoryPopular)
	if snap.Loading || snap.Err != "" {
		t.Fatalf("unexpected state: %+v", snap)
	}
	if len(snap.Items) != 2 || snap.CurrentPage != 1 {
		t.Fatalf("items=%d page=%d, want 2/1", len(snap.Items), snap.CurrentPage)
	}
}

func TestLoadCategoryAccumulatesPages(t *testing.T) {
	repo := &fakeRepo{results: [][]domain.MediaItem{
		{movie(1, "a")},
		{movie(2, "b")},
	}}
	svc, st := newCatalogService(repo)

	svc.LoadCategory(context.Background(), domain.CategoryTrending, domain.MediaTypeMovie, 1)
	svc.LoadCategory(context.Background(), domain.CategoryTrending, domain.MediaTypeMovie, 2)

	snap := st.Snapshot(domain.CategoryTrending)
	if len(snap.Items) != 2 || snap.Items[0].ID != 1 || snap.Items[1].ID != 2 {
		t.Fatalf("pages did not accumulate: %+v", snap.Items)
	}
	if snap.CurrentPage != 2 {
		t.Fatalf("CurrentPage = %d, want 2", snap.CurrentPage)
	}
}

func TestLoadCategoryNetworkFailure(t *testing.T) {
	repo := &fakeRepo{
		results: [][]domain.MediaItem{{movie(1, "a")}, nil},
		errs:    []error{nil, domain.ErrCatalogUnreachable},
	}
	svc, st := newCatalogService(repo)

	svc.LoadCategory(context.Background(), domain.CategoryPopular, domain.MediaTypeMovie, 1)
	err := svc.LoadCategory(context.Background(), domain.CategoryPopular, domain.MediaTypeMovie, 2)
	if !errors.Is(err, domain.ErrCatalogUnreachable) {
		t.Fatalf("error = %v, want ErrCatalogUnreachable", err)
	}

	snap := st.Snapshot(domain.CategoryPopular)
	if snap.Err != msgNetworkError {
		t.Fatalf("Err = %q, want %q", snap.Err, msgNetworkError)
	}
	if len(snap.Items) != 1 || snap.CurrentPage != 1 {
		t.Fatalf("failure discarded prior page: %+v", snap)
	}
}

func TestLoadCategoryUpstreamFailureMessage(t *testing.T) {
	repo := &fakeRepo{errs: []error{domain.ErrUpstream}}
	svc, st := newCatalogService(repo)

	svc.LoadCategory(context.Background(), domain.CategoryTopRated, domain.MediaTypeMovie, 1)

	if snap := st.Snapshot(domain.CategoryTopRated); snap.Err != msgFetchError {
		t.Fatalf("Err = %q, want %q", snap.Err, msgFetchError)
	}
}

func TestLoadCategoryRejectsSearch(t *testing.T) {
	svc, _ := newCatalogService(&fakeRepo{})

	if err := svc.LoadCategory(context.Background(), domain.CategorySearch, domain.MediaTypeMovie, 1); err == nil {
		t.Fatalf("LoadCategory(search) should be rejected")
	}
}

func TestSearchBlankQueryShortCircuits(t *testing.T) {
	repo := &fakeRepo{}
	svc, st := newCatalogService(repo)

	st.SearchSucceeded([]domain.MediaItem{movie(1, "old")}, "old")

	if err := svc.Search(context.Background(), domain.MediaTypeMovie, "   "); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if repo.calls != 0 {
		t.Fatalf("blank query issued %d network calls, want 0", repo.calls)
	}
	if snap := st.Snapshot(domain.CategorySearch); len(snap.Items) != 0 || snap.Query != "" {
		t.Fatalf("blank query did not clear search: %+v", snap)
	}
}

func TestSearchTrimsAndRecordsQuery(t *testing.T) {
	repo := &fakeRepo{results: [][]domain.MediaItem{{movie(1, "Batman")}}}
	svc, st := newCatalogService(repo)

	svc.Search(context.Background(), domain.MediaTypeMovie, "  batman  ")

	if len(repo.searchQueries) != 1 || repo.searchQueries[0] != "batman" {
		t.Fatalf("queries = %v, want [batman]", repo.searchQueries)
	}
	if snap := st.Snapshot(domain.CategorySearch); snap.Query != "batman" {
		t.Fatalf("Query = %q, want batman", snap.Query)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	svc, st := newCatalogService(&fakeRepo{})

	// Two overlapping requests for the same category: the refresh
	// (page 1) is issued first, "load more" (page 2) second.
	refreshSeq := svc.begin(domain.CategoryPopular)
	loadMoreSeq := svc.begin(domain.CategoryPopular)

	// The newer request's response arrives first and is applied.
	if !svc.tryApply(domain.CategoryPopular, loadMoreSeq) {
		t.Fatalf("fresh response was rejected")
	}
	st.FetchSucceeded(domain.CategoryPopular, []domain.MediaItem{movie(2, "fresh")}, 2)

	// The older response arrives late and must be discarded.
	if svc.tryApply(domain.CategoryPopular, refreshSeq) {
		t.Fatalf("stale response was applied over a fresher one")
	}

	snap := st.Snapshot(domain.CategoryPopular)
	if len(snap.Items) != 1 || snap.Items[0].Title != "fresh" || snap.CurrentPage != 2 {
		t.Fatalf("state after stale discard = %+v", snap)
	}
}

func TestSequenceGuardIsPerCategory(t *testing.T) {
	svc, _ := newCatalogService(&fakeRepo{})

	popularSeq := svc.begin(domain.CategoryPopular)
	trendingSeq := svc.begin(domain.CategoryTrending)

	if !svc.tryApply(domain.CategoryPopular, popularSeq) {
		t.Fatalf("popular response rejected")
	}
	if !svc.tryApply(domain.CategoryTrending, trendingSeq) {
		t.Fatalf("trending response rejected: counters are shared across categories")
	}
}

func TestSelectItemStoresSelection(t *testing.T) {
	repo := &fakeRepo{results: [][]domain.MediaItem{{movie(7, "Alien")}}}
	svc, st := newCatalogService(repo)

	details, err := svc.SelectItem(context.Background(), movie(7, "Alien"))
	if err != nil {
		t.Fatalf("SelectItem() error = %v", err)
	}
	if details.ID != 7 {
		t.Fatalf("details.ID = %d, want 7", details.ID)
	}
	if sel := st.Selected(); sel == nil || sel.ID != 7 {
		t.Fatalf("Selected() = %+v, want id 7", sel)
	}

	svc.ClearSelection()
	if st.Selected() != nil {
		t.Fatalf("ClearSelection left a selection")
	}
}
