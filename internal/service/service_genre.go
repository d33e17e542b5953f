package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/store"
	"github.com/MKhiriev/series-catalog/models"
)

type genreService struct {
	genreRepository store.GenreRepository

	logger *logger.Logger
}

func NewGenreService(genreRepository store.GenreRepository, logger *logger.Logger) GenreService {
	return &genreService{
		genreRepository: genreRepository,
		logger:          logger,
	}
}

func (g *genreService) CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error) {
	created, err := g.genreRepository.CreateGenre(ctx, genre)
	if err != nil {
		return models.Genre{}, fmt.Errorf("genre creation failed: %w", err)
	}

	return created, nil
}

func (g *genreService) ListGenres(ctx context.Context, page models.Page) ([]models.Genre, error) {
	genres, err := g.genreRepository.ListGenres(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing genres failed: %w", err)
	}

	return genres, nil
}

// AverageRating returns the mean rating of the series tagged with the genre,
// rounded to two decimals. Unrated series are left out of the mean.
//
// Returns store.ErrGenreNotFound for an unknown genre.
func (g *genreService) AverageRating(ctx context.Context, genreID int64) (models.GenreAverageRating, error) {
	log := logger.FromContext(ctx)

	if _, err := g.genreRepository.GetGenre(ctx, genreID); err != nil {
		return models.GenreAverageRating{}, fmt.Errorf("genre lookup failed: %w", err)
	}

	ratings, err := g.genreRepository.ListGenreRatings(ctx, genreID)
	if err != nil {
		log.Err(err).Int64("genre_id", genreID).Msg("listing genre ratings failed")
		return models.GenreAverageRating{}, fmt.Errorf("listing genre ratings failed: %w", err)
	}

	average, message := averageRating(ratings)
	return models.GenreAverageRating{
		GenreID:       genreID,
		AverageRating: average,
		Message:       message,
	}, nil
}

// averageRating computes the mean of the non-nil ratings in a single pass.
// When there is nothing to average it returns nil and the reason.
func averageRating(ratings []*float64) (*float64, string) {
	if len(ratings) == 0 {
		return nil, MessageNoSeriesInGenre
	}

	var sum float64
	var count int
	for _, rating := range ratings {
		if rating == nil {
			continue
		}
		sum += *rating
		count++
	}

	if count == 0 {
		return nil, MessageNoRatingsAvailable
	}

	mean := math.RoundToEven(sum/float64(count)*100) / 100
	return &mean, ""
}
