package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/mock"
	"github.com/MKhiriev/series-catalog/internal/store"
	"github.com/MKhiriev/series-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGenreSvc(t *testing.T) (GenreService, *mock.MockGenreRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockGenreRepository(ctrl)

	return NewGenreValidationService().Wrap(NewGenreService(repo, logger.Nop())), repo
}

func rating(v float64) *float64 {
	return &v
}

func TestAverageRating_Computation(t *testing.T) {
	tests := []struct {
		name        string
		ratings     []*float64
		wantAverage *float64
		wantMessage string
	}{
		{"mean skips unset ratings", []*float64{rating(8.0), rating(6.0), nil}, rating(7.0), ""},
		{"no series", []*float64{}, nil, MessageNoSeriesInGenre},
		{"all unset", []*float64{nil, nil}, nil, MessageNoRatingsAvailable},
		{"rounded to two decimals", []*float64{rating(7.0), rating(8.0), rating(8.0)}, rating(7.67), ""},
		{"single rating", []*float64{rating(9.25)}, rating(9.25), ""},
		{"half rounds to even", []*float64{rating(0.125)}, rating(0.12), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestGenreSvc(t)
			ctx := context.Background()

			repo.EXPECT().GetGenre(ctx, int64(1)).Return(models.Genre{GenreID: 1, Name: "Drama"}, nil)
			repo.EXPECT().ListGenreRatings(ctx, int64(1)).Return(tt.ratings, nil)

			got, err := svc.AverageRating(ctx, 1)

			require.NoError(t, err)
			assert.Equal(t, int64(1), got.GenreID)
			assert.Equal(t, tt.wantMessage, got.Message)
			if tt.wantAverage == nil {
				assert.Nil(t, got.AverageRating)
				return
			}
			require.NotNil(t, got.AverageRating)
			assert.InDelta(t, *tt.wantAverage, *got.AverageRating, 1e-9)
		})
	}
}

func TestAverageRating_UnknownGenre(t *testing.T) {
	svc, repo := newTestGenreSvc(t)

	repo.EXPECT().GetGenre(gomock.Any(), int64(404)).Return(models.Genre{}, store.ErrGenreNotFound)

	_, err := svc.AverageRating(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrGenreNotFound)
}

func TestAverageRating_RatingsQueryFails(t *testing.T) {
	svc, repo := newTestGenreSvc(t)

	repo.EXPECT().GetGenre(gomock.Any(), int64(1)).Return(models.Genre{GenreID: 1}, nil)
	repo.EXPECT().ListGenreRatings(gomock.Any(), int64(1)).Return(nil, store.ErrExecutingQuery)

	_, err := svc.AverageRating(context.Background(), 1)

	require.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestCreateGenre(t *testing.T) {
	svc, repo := newTestGenreSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateGenre(ctx, models.Genre{Name: "Drama"}).Return(models.Genre{GenreID: 1, Name: "Drama"}, nil)

	genre, err := svc.CreateGenre(ctx, models.Genre{Name: "Drama"})

	require.NoError(t, err)
	assert.Equal(t, models.Genre{GenreID: 1, Name: "Drama"}, genre)
}

func TestCreateGenre_Duplicate(t *testing.T) {
	svc, repo := newTestGenreSvc(t)

	repo.EXPECT().CreateGenre(gomock.Any(), gomock.Any()).Return(models.Genre{}, store.ErrGenreAlreadyExists)

	_, err := svc.CreateGenre(context.Background(), models.Genre{Name: "Drama"})

	require.ErrorIs(t, err, store.ErrGenreAlreadyExists)
}

func TestCreateGenre_EmptyNameNeverReachesRepository(t *testing.T) {
	svc, _ := newTestGenreSvc(t)

	_, err := svc.CreateGenre(context.Background(), models.Genre{Name: ""})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestListGenres(t *testing.T) {
	svc, repo := newTestGenreSvc(t)
	page := models.Page{Skip: 5, Limit: 2}

	repo.EXPECT().ListGenres(gomock.Any(), page).Return([]models.Genre{{GenreID: 6, Name: "Drama"}}, nil)

	genres, err := svc.ListGenres(context.Background(), page)

	require.NoError(t, err)
	assert.Len(t, genres, 1)
}

func TestListGenres_Fails(t *testing.T) {
	svc, repo := newTestGenreSvc(t)
	dbErr := errors.New("db down")

	repo.EXPECT().ListGenres(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := svc.ListGenres(context.Background(), models.DefaultPage())

	require.ErrorIs(t, err, dbErr)
}
