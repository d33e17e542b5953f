package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenreRepo(t *testing.T) (*genreRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &genreRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateGenre(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO genres").
					WithArgs("Drama").
					WillReturnRows(sqlmock.NewRows([]string{"genre_id"}).AddRow(7))
			},
			wantID: 7,
		},
		{
			name: "duplicate name",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO genres").
					WithArgs("Drama").
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrGenreAlreadyExists,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO genres").
					WithArgs("Drama").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestGenreRepo(t)
			tt.setup(mock)

			genre, err := repo.CreateGenre(context.Background(), models.Genre{Name: "Drama"})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.Genre{GenreID: tt.wantID, Name: "Drama"}, genre)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetGenre(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestGenreRepo(t)
		mock.ExpectQuery("SELECT genre_id, name FROM genres WHERE genre_id = \\$1").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"genre_id", "name"}).AddRow(3, "Comedy"))

		genre, err := repo.GetGenre(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, models.Genre{GenreID: 3, Name: "Comedy"}, genre)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestGenreRepo(t)
		mock.ExpectQuery("SELECT genre_id, name FROM genres").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"genre_id", "name"}))

		_, err := repo.GetGenre(context.Background(), 3)

		require.ErrorIs(t, err, ErrGenreNotFound)
	})
}

func TestListGenres(t *testing.T) {
	repo, mock := newTestGenreRepo(t)

	mock.ExpectQuery("SELECT genre_id, name FROM genres ORDER BY genre_id LIMIT 2 OFFSET 1").
		WillReturnRows(sqlmock.NewRows([]string{"genre_id", "name"}).
			AddRow(2, "Comedy").
			AddRow(3, "Drama"))

	genres, err := repo.ListGenres(context.Background(), models.Page{Skip: 1, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, []models.Genre{{GenreID: 2, Name: "Comedy"}, {GenreID: 3, Name: "Drama"}}, genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListGenres_Empty(t *testing.T) {
	repo, mock := newTestGenreRepo(t)

	mock.ExpectQuery("SELECT genre_id, name FROM genres").
		WillReturnRows(sqlmock.NewRows([]string{"genre_id", "name"}))

	genres, err := repo.ListGenres(context.Background(), models.DefaultPage())

	require.NoError(t, err)
	assert.NotNil(t, genres)
	assert.Empty(t, genres)
}

func TestListGenres_RowError(t *testing.T) {
	repo, mock := newTestGenreRepo(t)

	mock.ExpectQuery("SELECT genre_id, name FROM genres").
		WillReturnRows(sqlmock.NewRows([]string{"genre_id", "name"}).
			AddRow(1, "Drama").
			RowError(0, errors.New("broken row")))

	_, err := repo.ListGenres(context.Background(), models.DefaultPage())

	require.ErrorIs(t, err, ErrScanningRows)
}

func TestListGenreRatings(t *testing.T) {
	repo, mock := newTestGenreRepo(t)

	mock.ExpectQuery("SELECT s.rating FROM series s JOIN series_genres sg").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).
			AddRow(8.0).
			AddRow(nil).
			AddRow(6.0))

	ratings, err := repo.ListGenreRatings(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, ratings, 3)
	assert.Equal(t, 8.0, *ratings[0])
	assert.Nil(t, ratings[1])
	assert.Equal(t, 6.0, *ratings[2])
}

func TestListGenreRatings_QueryError(t *testing.T) {
	repo, mock := newTestGenreRepo(t)

	mock.ExpectQuery("SELECT s.rating").
		WithArgs(int64(1)).
		WillReturnError(errors.New("timeout"))

	_, err := repo.ListGenreRatings(context.Background(), 1)

	require.ErrorIs(t, err, ErrExecutingQuery)
}
