package service

import (
	"context"

	"github.com/MKhiriev/series-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ResolveToken verifies a bearer token and returns the user it was issued
	// for.
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)
}

type GenreService interface {
	CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error)
	ListGenres(ctx context.Context, page models.Page) ([]models.Genre, error)
	AverageRating(ctx context.Context, genreID int64) (models.GenreAverageRating, error)
}

type SeriesService interface {
	CreateSeries(ctx context.Context, series models.SeriesCreate) (models.Series, error)
	GetSeries(ctx context.Context, seriesID int64) (models.Series, error)
	ListSeries(ctx context.Context, query models.SeriesQuery) ([]models.Series, error)

	CreateSeason(ctx context.Context, season models.Season) (models.Season, error)
	CreateEpisode(ctx context.Context, episode models.Episode) (models.Episode, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
