package service

import (
	"fmt"

	"github.com/MKhiriev/series-catalog/internal/config"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/store"
)

type Services struct {
	AuthService    AuthService
	GenreService   GenreService
	SeriesService  SeriesService
	AppInfoService AppInfoService
}

// NewServices builds the service layer on top of storages. Genre and series
// services are wrapped with payload validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	genreService := NewGenreValidationService().
		Wrap(NewGenreService(storages.GenreRepository, logger))
	seriesService := NewSeriesValidationService().
		Wrap(NewSeriesService(storages.SeriesRepository, storages.SeasonRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		GenreService:   genreService,
		SeriesService:  seriesService,
		AppInfoService: appInfoService,
	}, nil
}
