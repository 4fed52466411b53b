package domain

import "context"

// CatalogRepository is the read-only contract against the remote
// catalog. Pages are 1-based. Implementations own request/response
// mapping only; they never retry and never touch local state.
type CatalogRepository interface {
	// Trending returns the weekly trending listing.
	Trending(ctx context.Context, media MediaType, page int) ([]MediaItem, error)

	// Popular returns the popular listing.
	Popular(ctx context.Context, media MediaType, page int) ([]MediaItem, error)

	// TopRated returns the top-rated listing.
	TopRated(ctx context.Context, media MediaType, page int) ([]MediaItem, error)

	// Search returns free-text search results.
	Search(ctx context.Context, media MediaType, query string, page int) ([]MediaItem, error)

	// Details returns the full record for a single item.
	Details(ctx context.Context, media MediaType, id int64) (*MediaDetails, error)
}
