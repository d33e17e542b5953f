package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/series-catalog/internal/config"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file::memory:",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DB{Driver: "oracle", DSN: "x"}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage driver")
}

func TestStorages_Close_Nil(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}

func TestSQLiteStorages_Catalog(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	drama, err := s.GenreRepository.CreateGenre(ctx, models.Genre{Name: "Drama"})
	require.NoError(t, err)
	thriller, err := s.GenreRepository.CreateGenre(ctx, models.Genre{Name: "Thriller"})
	require.NoError(t, err)

	_, err = s.GenreRepository.CreateGenre(ctx, models.Genre{Name: "Drama"})
	require.ErrorIs(t, err, ErrGenreAlreadyExists)

	rating := 8.5
	series, err := s.SeriesRepository.CreateSeries(ctx, models.SeriesCreate{
		Title:       "Dark",
		Description: "Time travel",
		ReleaseYear: 2017,
		Rating:      &rating,
		GenreIDs:    []int64{drama.GenreID, thriller.GenreID, thriller.GenreID, 999},
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Genre{drama, thriller}, series.Genres)
	assert.Empty(t, series.Seasons)

	// seasons are returned ordered by number
	second, err := s.SeasonRepository.CreateSeason(ctx, models.Season{Number: 2, ReleaseYear: 2019, SeriesID: series.SeriesID})
	require.NoError(t, err)
	first, err := s.SeasonRepository.CreateSeason(ctx, models.Season{Number: 1, ReleaseYear: 2017, SeriesID: series.SeriesID})
	require.NoError(t, err)

	pilot, err := s.SeasonRepository.CreateEpisode(ctx, models.Episode{Title: "Secrets", DurationMinutes: 51, SeasonID: first.SeasonID})
	require.NoError(t, err)

	got, err := s.SeriesRepository.GetSeries(ctx, series.SeriesID)
	require.NoError(t, err)
	require.Len(t, got.Seasons, 2)
	assert.Equal(t, first.SeasonID, got.Seasons[0].SeasonID)
	assert.Equal(t, second.SeasonID, got.Seasons[1].SeasonID)
	assert.Equal(t, []models.Episode{pilot}, got.Seasons[0].Episodes)
	assert.Empty(t, got.Seasons[1].Episodes)

	_, err = s.SeasonRepository.CreateSeason(ctx, models.Season{Number: 1, SeriesID: 999})
	require.ErrorIs(t, err, ErrSeriesNotFound)
	_, err = s.SeasonRepository.CreateEpisode(ctx, models.Episode{Title: "Ghost", SeasonID: 999})
	require.ErrorIs(t, err, ErrSeasonNotFound)

	_, err = s.SeriesRepository.GetSeries(ctx, 999)
	require.ErrorIs(t, err, ErrSeriesNotFound)

	ratings, err := s.GenreRepository.ListGenreRatings(ctx, drama.GenreID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 8.5, *ratings[0])

	byTitle, err := s.SeriesRepository.ListSeries(ctx, models.SeriesQuery{Page: models.DefaultPage(), Title: "Dark"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)

	none, err := s.SeriesRepository.ListSeries(ctx, models.SeriesQuery{Page: models.Page{Skip: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Empty(t, none)

	genres, err := s.GenreRepository.ListGenres(ctx, models.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []models.Genre{thriller}, genres)
}

func TestSQLiteStorages_CreateSeries_NonPositiveGenreIDs(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	drama, err := s.GenreRepository.CreateGenre(ctx, models.Genre{Name: "Drama"})
	require.NoError(t, err)

	series, err := s.SeriesRepository.CreateSeries(ctx, models.SeriesCreate{
		Title:    "Dark",
		GenreIDs: []int64{drama.GenreID, 0, -5},
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Genre{drama}, series.Genres)
}

func TestSQLiteStorages_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{Email: "alice@example.com", PasswordHash: "digest"})
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "alice@example.com", PasswordHash: "other"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := s.UserRepository.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, found)

	_, err = s.UserRepository.FindUserByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}
