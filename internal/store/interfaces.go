package store

import (
	"context"

	"github.com/MKhiriev/series-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type GenreRepository interface {
	CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error)
	GetGenre(ctx context.Context, genreID int64) (models.Genre, error)
	ListGenres(ctx context.Context, page models.Page) ([]models.Genre, error)
	// ListGenreRatings returns the rating of every series tagged with the
	// genre; unrated series contribute a nil entry.
	ListGenreRatings(ctx context.Context, genreID int64) ([]*float64, error)
}

type SeriesRepository interface {
	// CreateSeries stores the series and links the genres that exist, all in
	// one transaction, and returns the stored series with its genres.
	CreateSeries(ctx context.Context, series models.SeriesCreate) (models.Series, error)
	GetSeries(ctx context.Context, seriesID int64) (models.Series, error)
	ListSeries(ctx context.Context, query models.SeriesQuery) ([]models.Series, error)
}

type SeasonRepository interface {
	CreateSeason(ctx context.Context, season models.Season) (models.Season, error)
	CreateEpisode(ctx context.Context, episode models.Episode) (models.Episode, error)
}
