package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/models"
)

// seriesRepository reads and writes the "series" table together with its
// genre links. Every series it returns is expanded with genres, seasons and
// the episodes of each season.
type seriesRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSeriesRepository(db *DB, logger *logger.Logger) SeriesRepository {
	logger.Debug().Msg("creating series repository")
	return &seriesRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSeries inserts the series row and its genre links inside a single
// transaction. Genre ids that do not exist are skipped and repeated ids are
// linked once. A failure in any step rolls back the whole create.
func (r *seriesRepository) CreateSeries(ctx context.Context, series models.SeriesCreate) (models.Series, error) {
	log := logger.FromContext(ctx)

	var seriesID int64
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildInsertSeriesQuery(r.db.builder, series)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&seriesID); err != nil {
			log.Err(err).Str("func", "*seriesRepository.CreateSeries").Msg("error inserting series")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		genreIDs, err := r.existingGenreIDs(ctx, tx, uniqueIDs(series.GenreIDs))
		if err != nil {
			return err
		}
		if len(genreIDs) == 0 {
			return nil
		}

		query, args, err = buildInsertSeriesGenresQuery(r.db.builder, seriesID, genreIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*seriesRepository.CreateSeries").
				Int64("series_id", seriesID).
				Int("genres_count", len(genreIDs)).
				Msg("error linking genres to series")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		return models.Series{}, err
	}

	log.Info().Str("func", "*seriesRepository.CreateSeries").Int64("series_id", seriesID).Msg("series created")

	return r.GetSeries(ctx, seriesID)
}

// GetSeries returns the fully expanded series or [ErrSeriesNotFound].
func (r *seriesRepository) GetSeries(ctx context.Context, seriesID int64) (models.Series, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSeriesQuery(r.db.builder, seriesID)
	if err != nil {
		return models.Series{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	series, err := scanSeries(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Series{}, ErrSeriesNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*seriesRepository.GetSeries").Int64("series_id", seriesID).Msg("error getting series")
		return models.Series{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	list := []models.Series{series}
	if err = r.expand(ctx, list); err != nil {
		return models.Series{}, err
	}

	return list[0], nil
}

// ListSeries returns one page of series ordered by id, optionally narrowed to
// an exact title.
func (r *seriesRepository) ListSeries(ctx context.Context, seriesQuery models.SeriesQuery) ([]models.Series, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSeriesQuery(r.db.builder, seriesQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	list, err := r.querySeries(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*seriesRepository.ListSeries").Msg("error listing series")
		return nil, err
	}

	if err = r.expand(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *seriesRepository) querySeries(ctx context.Context, query string, args []any) ([]models.Series, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	list := make([]models.Series, 0)
	for rows.Next() {
		series, scanErr := scanSeries(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		list = append(list, series)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}

// existingGenreIDs returns the subset of genreIDs that name a stored genre.
func (r *seriesRepository) existingGenreIDs(ctx context.Context, exec sqlExecutor, genreIDs []int64) ([]int64, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}

	query, args, err := buildSelectExistingGenreIDsQuery(r.db.builder, genreIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make([]int64, 0, len(genreIDs))
	for rows.Next() {
		var genreID int64
		if err = rows.Scan(&genreID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		found = append(found, genreID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return found, nil
}

// expand fills genres, seasons and episodes of every series in list.
// Each level is loaded with one IN query.
func (r *seriesRepository) expand(ctx context.Context, list []models.Series) error {
	log := logger.FromContext(ctx)

	if len(list) == 0 {
		return nil
	}

	seriesIDs := make([]int64, len(list))
	index := make(map[int64]int, len(list))
	for i := range list {
		seriesIDs[i] = list[i].SeriesID
		index[list[i].SeriesID] = i
		list[i].Genres = make([]models.Genre, 0)
		list[i].Seasons = make([]models.Season, 0)
	}

	if err := r.loadGenres(ctx, seriesIDs, list, index); err != nil {
		log.Err(err).Str("func", "*seriesRepository.expand").Msg("error loading series genres")
		return err
	}

	seasons, err := r.loadSeasons(ctx, seriesIDs)
	if err != nil {
		log.Err(err).Str("func", "*seriesRepository.expand").Msg("error loading seasons")
		return err
	}
	if len(seasons) == 0 {
		return nil
	}

	seasonIDs := make([]int64, len(seasons))
	for i := range seasons {
		seasonIDs[i] = seasons[i].SeasonID
	}

	episodes, err := r.loadEpisodes(ctx, seasonIDs)
	if err != nil {
		log.Err(err).Str("func", "*seriesRepository.expand").Msg("error loading episodes")
		return err
	}

	for i := range seasons {
		seasons[i].Episodes = episodes[seasons[i].SeasonID]
		if seasons[i].Episodes == nil {
			seasons[i].Episodes = make([]models.Episode, 0)
		}

		owner := &list[index[seasons[i].SeriesID]]
		owner.Seasons = append(owner.Seasons, seasons[i])
	}

	return nil
}

func (r *seriesRepository) loadGenres(ctx context.Context, seriesIDs []int64, list []models.Series, index map[int64]int) error {
	query, args, err := buildSelectSeriesGenresQuery(r.db.builder, seriesIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var seriesID int64
		var genre models.Genre
		if err = rows.Scan(&seriesID, &genre.GenreID, &genre.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		owner := &list[index[seriesID]]
		owner.Genres = append(owner.Genres, genre)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func (r *seriesRepository) loadSeasons(ctx context.Context, seriesIDs []int64) ([]models.Season, error) {
	query, args, err := buildSelectSeasonsQuery(r.db.builder, seriesIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	seasons := make([]models.Season, 0)
	for rows.Next() {
		var season models.Season
		if err = rows.Scan(&season.SeasonID, &season.Number, &season.ReleaseYear, &season.SeriesID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		seasons = append(seasons, season)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return seasons, nil
}

// loadEpisodes returns episodes grouped by season id.
func (r *seriesRepository) loadEpisodes(ctx context.Context, seasonIDs []int64) (map[int64][]models.Episode, error) {
	query, args, err := buildSelectEpisodesQuery(r.db.builder, seasonIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	episodes := make(map[int64][]models.Episode)
	for rows.Next() {
		var episode models.Episode
		if err = rows.Scan(&episode.EpisodeID, &episode.Title, &episode.DurationMinutes, &episode.SeasonID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		episodes[episode.SeasonID] = append(episodes[episode.SeasonID], episode)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return episodes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeries(row rowScanner) (models.Series, error) {
	var series models.Series
	var rating sql.NullFloat64

	if err := row.Scan(&series.SeriesID, &series.Title, &series.Description, &series.ReleaseYear, &rating); err != nil {
		return models.Series{}, err
	}
	if rating.Valid {
		series.Rating = &rating.Float64
	}

	return series, nil
}

// uniqueIDs returns the positive ids without duplicates, keeping first-seen
// order. Non-positive ids never name a row.
func uniqueIDs(ids []int64) []int64 {
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	return result
}
