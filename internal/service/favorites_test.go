package service

import (
	"testing"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/log"
	"github.com/reelterm/reel/internal/state"
)

func newFavoritesService() (*FavoritesService, *state.FavoritesState) {
	st := state.NewFavoritesState()
	return NewFavoritesService(st, log.NullLogger()), st
}

func TestToggleAddsAndRemoves(t *testing.T) {
	svc, st := newFavoritesService()
	item := movie(1, "Heat")

	if !svc.Toggle(item) {
		t.Fatalf("first Toggle() = false, want added")
	}
	if !svc.IsFavorite(item) || st.Len() != 1 {
		t.Fatalf("item not marked after Toggle")
	}

	if svc.Toggle(item) {
		t.Fatalf("second Toggle() = true, want removed")
	}
	if svc.IsFavorite(item) || st.Len() != 0 {
		t.Fatalf("item still marked after second Toggle")
	}
}

func TestToggleCachesDisplayFields(t *testing.T) {
	svc, st := newFavoritesService()

	svc.Toggle(domain.MediaItem{
		ID:         5,
		Type:       domain.MediaTypeTV,
		Title:      "The Wire",
		PosterPath: "/wire.jpg",
		Rating:     9.3,
	})

	got := st.Entries()[0]
	if got.Title != "The Wire" || got.PosterPath != "/wire.jpg" || got.Rating != 9.3 {
		t.Fatalf("cached display fields = %+v", got)
	}
	if got.AddedAt.IsZero() {
		t.Fatalf("AddedAt not stamped")
	}
}

func TestFilterMatchesFuzzily(t *testing.T) {
	svc, _ := newFavoritesService()
	svc.Toggle(movie(1, "The Dark Knight"))
	svc.Toggle(movie(2, "Heat"))
	svc.Toggle(movie(3, "Dark City"))

	got := svc.Filter("dark")
	if len(got) != 2 {
		t.Fatalf("Filter(dark) returned %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.ID == 2 {
			t.Fatalf("Filter matched an unrelated title")
		}
	}
}

func TestFilterBlankQueryKeepsInsertionOrder(t *testing.T) {
	svc, _ := newFavoritesService()
	svc.Toggle(movie(1, "b"))
	svc.Toggle(movie(2, "a"))

	got := svc.Filter("")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("blank filter reordered entries: %+v", got)
	}
}
