package domain

import (
	"fmt"
	"time"
)

// MediaType distinguishes movies from TV shows. A catalog id is only
// unique within its media type.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// String returns the API path segment for the media type.
func (m MediaType) String() string { return string(m) }

// Valid reports whether the media type is one of the known values.
func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// Image base URL and size variants used when expanding poster/backdrop
// path fragments returned by the catalog.
const (
	ImageBaseURL = "https://image.tmdb.org/t/p"
	PosterSize   = "/w500"
	BackdropSize = "/w1280"
)

// MediaItem is a single catalog entry as returned by listing and search
// calls. Items are immutable once received; a refetch replaces them
// wholesale.
type MediaItem struct {
	ID           int64     `json:"id"`
	Type         MediaType `json:"type"`
	Title        string    `json:"title"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"posterPath,omitempty"`
	BackdropPath string    `json:"backdropPath,omitempty"`
	ReleaseDate  string    `json:"releaseDate"` // YYYY-MM-DD, first air date for TV
	Rating       float64   `json:"rating"`      // 0-10 scale
	VoteCount    int       `json:"voteCount"`
	Popularity   float64   `json:"popularity"`
}

// PosterURL returns the full poster image URL, or "" when the item has
// no poster.
func (m MediaItem) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return ImageBaseURL + PosterSize + m.PosterPath
}

// BackdropURL returns the full backdrop image URL, or "" when the item
// has no backdrop.
func (m MediaItem) BackdropURL() string {
	if m.BackdropPath == "" {
		return ""
	}
	return ImageBaseURL + BackdropSize + m.BackdropPath
}

// ReleaseYear returns the four digit release year, or "" when the date
// is missing or malformed.
func (m MediaItem) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// FormattedRating returns the rating as "7.8", or "—" when unrated.
func (m MediaItem) FormattedRating() string {
	if m.VoteCount == 0 {
		return "—"
	}
	return fmt.Sprintf("%.1f", m.Rating)
}

// Genre is a catalog genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MediaDetails is the full detail record for a single item, fetched by
// id for the inspector view. TV-specific fields are zero for movies and
// vice versa.
type MediaDetails struct {
	MediaItem

	Genres  []Genre `json:"genres"`
	Status  string  `json:"status"`
	Tagline string  `json:"tagline,omitempty"`

	// Movie only
	Runtime int `json:"runtime,omitempty"` // minutes

	// TV only
	SeasonCount  int `json:"seasonCount,omitempty"`
	EpisodeCount int `json:"episodeCount,omitempty"`
}

// FormattedRuntime returns the runtime as "2h 14m", or "" when unknown.
func (d MediaDetails) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h, m := d.Runtime/60, d.Runtime%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FavoriteEntry is a user-marked item. Display fields are cached from
// the catalog item at the time of marking so the favorites list renders
// without refetching.
type FavoriteEntry struct {
	ID         int64     `json:"id"`
	Type       MediaType `json:"type"`
	Title      string    `json:"title"`
	PosterPath string    `json:"posterPath,omitempty"`
	Rating     float64   `json:"rating"`
	AddedAt    time.Time `json:"addedAt"` // set once at insertion
}

// Key returns the composite identity of the entry. A movie and a show
// may share a numeric id, so both fields participate.
func (f FavoriteEntry) Key() string {
	return fmt.Sprintf("%s:%d", f.Type, f.ID)
}

// FavoriteOf builds a favorite entry from a catalog item. AddedAt is
// left zero; the favorites store stamps it at insertion.
func FavoriteOf(item MediaItem) FavoriteEntry {
	return FavoriteEntry{
		ID:         item.ID,
		Type:       item.Type,
		Title:      item.Title,
		PosterPath: item.PosterPath,
		Rating:     item.Rating,
	}
}

// Session is an authenticated user session.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
