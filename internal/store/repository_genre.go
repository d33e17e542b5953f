package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/models"
)

type genreRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewGenreRepository(db *DB, logger *logger.Logger) GenreRepository {
	logger.Debug().Msg("creating genre repository")
	return &genreRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGenre stores a genre. A name that is already taken yields
// [ErrGenreAlreadyExists].
func (r *genreRepository) CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertGenreQuery(r.db.builder, genre)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.CreateGenre").Msg("failed to build query")
		return models.Genre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&genre.GenreID); err != nil {
		log.Err(err).Str("func", "*genreRepository.CreateGenre").Str("name", genre.Name).Msg("error inserting genre")

		if r.db.classify(err) == UniqueViolation {
			return models.Genre{}, ErrGenreAlreadyExists
		}
		return models.Genre{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return genre, nil
}

func (r *genreRepository) GetGenre(ctx context.Context, genreID int64) (models.Genre, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGenreQuery(r.db.builder, genreID)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.GetGenre").Msg("failed to build query")
		return models.Genre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var genre models.Genre
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&genre.GenreID, &genre.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Genre{}, ErrGenreNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.GetGenre").Int64("genre_id", genreID).Msg("error getting genre")
		return models.Genre{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return genre, nil
}

// ListGenres returns one page of genres ordered by id.
func (r *genreRepository) ListGenres(ctx context.Context, page models.Page) ([]models.Genre, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListGenresQuery(r.db.builder, page)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.ListGenres").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.ListGenres").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	genres := make([]models.Genre, 0)
	for rows.Next() {
		var genre models.Genre
		if err = rows.Scan(&genre.GenreID, &genre.Name); err != nil {
			log.Err(err).Str("func", "*genreRepository.ListGenres").Msg("failed to scan genre row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*genreRepository.ListGenres").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return genres, nil
}

func (r *genreRepository) ListGenreRatings(ctx context.Context, genreID int64) ([]*float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGenreRatingsQuery(r.db.builder, genreID)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.ListGenreRatings").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.ListGenreRatings").Int64("genre_id", genreID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ratings := make([]*float64, 0)
	for rows.Next() {
		var rating sql.NullFloat64
		if err = rows.Scan(&rating); err != nil {
			log.Err(err).Str("func", "*genreRepository.ListGenreRatings").Msg("failed to scan rating row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if rating.Valid {
			ratings = append(ratings, &rating.Float64)
		} else {
			ratings = append(ratings, nil)
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*genreRepository.ListGenreRatings").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ratings, nil
}
