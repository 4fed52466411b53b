package domain

// Category is one of the independently tracked listing buckets. Every
// category owns its own page buffer and loading/error flags; a fetch in
// one category never touches another.
type Category string

const (
	CategoryTrending Category = "trending"
	CategoryPopular  Category = "popular"
	CategoryTopRated Category = "topRated"
	CategorySearch   Category = "search"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryTrending, CategoryPopular, CategoryTopRated, CategorySearch}
}

// Valid reports whether the category is one of the declared buckets.
func (c Category) Valid() bool {
	switch c {
	case CategoryTrending, CategoryPopular, CategoryTopRated, CategorySearch:
		return true
	}
	return false
}

// Accumulates reports whether pages for this category append to prior
// results. Search pages replace instead.
func (c Category) Accumulates() bool {
	return c != CategorySearch
}

// Listing is a read-only snapshot of a single category's state.
type Listing struct {
	Items       []MediaItem
	Loading     bool
	Err         string // last failure, "" when none
	CurrentPage int    // last page merged; unused for search
	Query       string // search only: query that produced Items
}
