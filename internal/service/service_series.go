package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/store"
	"github.com/MKhiriev/series-catalog/models"
)

// seriesService serves series together with their seasons and episodes.
// Not-found conditions come from the store unchanged (wrapped), so callers
// match store.ErrSeriesNotFound and store.ErrSeasonNotFound.
type seriesService struct {
	seriesRepository store.SeriesRepository
	seasonRepository store.SeasonRepository

	logger *logger.Logger
}

func NewSeriesService(seriesRepository store.SeriesRepository, seasonRepository store.SeasonRepository, logger *logger.Logger) SeriesService {
	return &seriesService{
		seriesRepository: seriesRepository,
		seasonRepository: seasonRepository,
		logger:           logger,
	}
}

func (s *seriesService) CreateSeries(ctx context.Context, series models.SeriesCreate) (models.Series, error) {
	created, err := s.seriesRepository.CreateSeries(ctx, series)
	if err != nil {
		return models.Series{}, fmt.Errorf("series creation failed: %w", err)
	}

	return created, nil
}

func (s *seriesService) GetSeries(ctx context.Context, seriesID int64) (models.Series, error) {
	series, err := s.seriesRepository.GetSeries(ctx, seriesID)
	if err != nil {
		return models.Series{}, fmt.Errorf("getting series failed: %w", err)
	}

	return series, nil
}

func (s *seriesService) ListSeries(ctx context.Context, query models.SeriesQuery) ([]models.Series, error) {
	list, err := s.seriesRepository.ListSeries(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing series failed: %w", err)
	}

	return list, nil
}

func (s *seriesService) CreateSeason(ctx context.Context, season models.Season) (models.Season, error) {
	created, err := s.seasonRepository.CreateSeason(ctx, season)
	if err != nil {
		return models.Season{}, fmt.Errorf("season creation failed: %w", err)
	}

	return created, nil
}

func (s *seriesService) CreateEpisode(ctx context.Context, episode models.Episode) (models.Episode, error) {
	created, err := s.seasonRepository.CreateEpisode(ctx, episode)
	if err != nil {
		return models.Episode{}, fmt.Errorf("episode creation failed: %w", err)
	}

	return created, nil
}
