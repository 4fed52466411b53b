package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", "en-US", log.NullLogger())
}

func TestCredentialInjectedOnEveryCall(t *testing.T) {
	var gotKey, gotPage, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(`{"page":2,"results":[]}`))
	})

	if _, err := client.Popular(context.Background(), domain.MediaTypeMovie, 2); err != nil {
		t.Fatalf("Popular() error = %v", err)
	}

	if gotPath != "/movie/popular" {
		t.Fatalf("path = %q, want /movie/popular", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api_key = %q, want test-key", gotKey)
	}
	if gotPage != "2" {
		t.Fatalf("page = %q, want 2", gotPage)
	}
}

func TestTrendingDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/week" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 27205, "title": "Inception", "overview": "A thief...",
				 "poster_path": "/incep.jpg", "release_date": "2010-07-15",
				 "vote_average": 8.4, "vote_count": 34000, "popularity": 90.5}
			],
			"total_pages": 500,
			"total_results": 10000
		}`))
	})

	items, err := client.Trending(context.Background(), domain.MediaTypeMovie, 1)
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}

	got := items[0]
	if got.ID != 27205 || got.Title != "Inception" || got.Type != domain.MediaTypeMovie {
		t.Fatalf("mapped item = %+v", got)
	}
	if got.Rating != 8.4 || got.VoteCount != 34000 || got.ReleaseDate != "2010-07-15" {
		t.Fatalf("mapped fields = %+v", got)
	}
}

func TestTVListingMapsNameAndFirstAirDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":1396,"name":"Breaking Bad","first_air_date":"2008-01-20","vote_average":8.9,"vote_count":12000}]}`))
	})

	items, err := client.TopRated(context.Background(), domain.MediaTypeTV, 1)
	if err != nil {
		t.Fatalf("TopRated() error = %v", err)
	}
	got := items[0]
	if got.Title != "Breaking Bad" || got.ReleaseDate != "2008-01-20" || got.Type != domain.MediaTypeTV {
		t.Fatalf("mapped tv item = %+v", got)
	}
}

func TestSearchSendsQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"results":[]}`))
	})

	if _, err := client.Search(context.Background(), domain.MediaTypeMovie, "batman begins", 1); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotQuery != "batman begins" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestNonSuccessStatusIsUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
	})

	_, err := client.Popular(context.Background(), domain.MediaTypeMovie, 1)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
}

func TestMalformedPayloadIsBadPayloadError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{`))
	})

	_, err := client.Trending(context.Background(), domain.MediaTypeMovie, 1)
	if !errors.Is(err, domain.ErrBadPayload) {
		t.Fatalf("error = %v, want ErrBadPayload", err)
	}
}

func TestUnreachableServerIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, "test-key", "", log.NullLogger())

	_, err := client.Popular(context.Background(), domain.MediaTypeMovie, 1)
	if !errors.Is(err, domain.ErrCatalogUnreachable) {
		t.Fatalf("error = %v, want ErrCatalogUnreachable", err)
	}
}

func TestDetailsMapsMovieRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/27205" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id":27205,"title":"Inception","runtime":148,"status":"Released","tagline":"Your mind is the scene of the crime.","genres":[{"id":28,"name":"Action"}]}`))
	})

	details, err := client.Details(context.Background(), domain.MediaTypeMovie, 27205)
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if details.Runtime != 148 || details.Status != "Released" {
		t.Fatalf("details = %+v", details)
	}
	if len(details.Genres) != 1 || details.Genres[0].Name != "Action" {
		t.Fatalf("genres = %+v", details.Genres)
	}
}

func TestDetailsMapsTVRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1396,"name":"Breaking Bad","number_of_seasons":5,"number_of_episodes":62,"status":"Ended"}`))
	})

	details, err := client.Details(context.Background(), domain.MediaTypeTV, 1396)
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if details.SeasonCount != 5 || details.EpisodeCount != 62 || details.Title != "Breaking Bad" {
		t.Fatalf("details = %+v", details)
	}
}
