package tmdb

// Raw TMDB API response shapes. Pagination metadata beyond results is
// decoded but not consumed by callers.

type movieDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
}

type tvDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
}

type movieListResponse struct {
	Page         int        `json:"page"`
	Results      []movieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type tvListResponse struct {
	Page         int     `json:"page"`
	Results      []tvDTO `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type genreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type movieDetailsDTO struct {
	movieDTO
	Genres  []genreDTO `json:"genres"`
	Runtime int        `json:"runtime"`
	Status  string     `json:"status"`
	Tagline string     `json:"tagline"`
}

type tvDetailsDTO struct {
	tvDTO
	Genres           []genreDTO `json:"genres"`
	NumberOfSeasons  int        `json:"number_of_seasons"`
	NumberOfEpisodes int        `json:"number_of_episodes"`
	Status           string     `json:"status"`
	Tagline          string     `json:"tagline"`
}

type statusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
