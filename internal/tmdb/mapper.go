package tmdb

import "github.com/reelterm/reel/internal/domain"

func mapMovie(dto movieDTO) domain.MediaItem {
	return domain.MediaItem{
		ID:           dto.ID,
		Type:         domain.MediaTypeMovie,
		Title:        dto.Title,
		Overview:     dto.Overview,
		PosterPath:   dto.PosterPath,
		BackdropPath: dto.BackdropPath,
		ReleaseDate:  dto.ReleaseDate,
		Rating:       dto.VoteAverage,
		VoteCount:    dto.VoteCount,
		Popularity:   dto.Popularity,
	}
}

func mapTV(dto tvDTO) domain.MediaItem {
	return domain.MediaItem{
		ID:           dto.ID,
		Type:         domain.MediaTypeTV,
		Title:        dto.Name,
		Overview:     dto.Overview,
		PosterPath:   dto.PosterPath,
		BackdropPath: dto.BackdropPath,
		ReleaseDate:  dto.FirstAirDate,
		Rating:       dto.VoteAverage,
		VoteCount:    dto.VoteCount,
		Popularity:   dto.Popularity,
	}
}

func mapMovies(dtos []movieDTO) []domain.MediaItem {
	items := make([]domain.MediaItem, len(dtos))
	for i, dto := range dtos {
		items[i] = mapMovie(dto)
	}
	return items
}

func mapTVs(dtos []tvDTO) []domain.MediaItem {
	items := make([]domain.MediaItem, len(dtos))
	for i, dto := range dtos {
		items[i] = mapTV(dto)
	}
	return items
}

func mapGenres(dtos []genreDTO) []domain.Genre {
	genres := make([]domain.Genre, len(dtos))
	for i, dto := range dtos {
		genres[i] = domain.Genre{ID: dto.ID, Name: dto.Name}
	}
	return genres
}

func mapMovieDetails(dto movieDetailsDTO) *domain.MediaDetails {
	return &domain.MediaDetails{
		MediaItem: mapMovie(dto.movieDTO),
		Genres:    mapGenres(dto.Genres),
		Status:    dto.Status,
		Tagline:   dto.Tagline,
		Runtime:   dto.Runtime,
	}
}

func mapTVDetails(dto tvDetailsDTO) *domain.MediaDetails {
	return &domain.MediaDetails{
		MediaItem:    mapTV(dto.tvDTO),
		Genres:       mapGenres(dto.Genres),
		Status:       dto.Status,
		Tagline:      dto.Tagline,
		SeasonCount:  dto.NumberOfSeasons,
		EpisodeCount: dto.NumberOfEpisodes,
	}
}
