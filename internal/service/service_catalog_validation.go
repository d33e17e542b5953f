package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/series-catalog/internal/validators"
	"github.com/MKhiriev/series-catalog/models"
)

// SeriesValidationService validates series, season and episode payloads
// before handing them to the wrapped SeriesService.
type SeriesValidationService struct {
	inner     SeriesService
	validator validators.Validator
}

func NewSeriesValidationService() SeriesServiceWrapper {
	return &SeriesValidationService{
		validator: validators.NewCatalogValidator(),
	}
}

func (v *SeriesValidationService) CreateSeries(ctx context.Context, series models.SeriesCreate) (models.Series, error) {
	if err := v.validator.Validate(ctx, series); err != nil {
		return models.Series{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateSeries(ctx, series)
}

func (v *SeriesValidationService) GetSeries(ctx context.Context, seriesID int64) (models.Series, error) {
	return v.inner.GetSeries(ctx, seriesID)
}

func (v *SeriesValidationService) ListSeries(ctx context.Context, query models.SeriesQuery) ([]models.Series, error) {
	return v.inner.ListSeries(ctx, query)
}

func (v *SeriesValidationService) CreateSeason(ctx context.Context, season models.Season) (models.Season, error) {
	if err := v.validator.Validate(ctx, season); err != nil {
		return models.Season{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateSeason(ctx, season)
}

func (v *SeriesValidationService) CreateEpisode(ctx context.Context, episode models.Episode) (models.Episode, error) {
	if err := v.validator.Validate(ctx, episode); err != nil {
		return models.Episode{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateEpisode(ctx, episode)
}

func (v *SeriesValidationService) Wrap(wrapped SeriesService) SeriesService {
	v.inner = wrapped
	return v
}

// GenreValidationService validates genre payloads before handing them to the
// wrapped GenreService.
type GenreValidationService struct {
	inner     GenreService
	validator validators.Validator
}

func NewGenreValidationService() GenreServiceWrapper {
	return &GenreValidationService{
		validator: validators.NewCatalogValidator(),
	}
}

func (v *GenreValidationService) CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error) {
	if err := v.validator.Validate(ctx, genre); err != nil {
		return models.Genre{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateGenre(ctx, genre)
}

func (v *GenreValidationService) ListGenres(ctx context.Context, page models.Page) ([]models.Genre, error) {
	return v.inner.ListGenres(ctx, page)
}

func (v *GenreValidationService) AverageRating(ctx context.Context, genreID int64) (models.GenreAverageRating, error) {
	return v.inner.AverageRating(ctx, genreID)
}

func (v *GenreValidationService) Wrap(wrapped GenreService) GenreService {
	v.inner = wrapped
	return v
}
