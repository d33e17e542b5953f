package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/models"
)

// seasonRepository creates seasons and their episodes. The parent row is not
// looked up beforehand: a missing parent is reported by the foreign key.
type seasonRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSeasonRepository(db *DB, logger *logger.Logger) SeasonRepository {
	logger.Debug().Msg("creating season repository")
	return &seasonRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSeason attaches a new season to season.SeriesID.
// An unknown series yields [ErrSeriesNotFound].
func (r *seasonRepository) CreateSeason(ctx context.Context, season models.Season) (models.Season, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSeasonQuery(r.db.builder, season)
	if err != nil {
		log.Err(err).Str("func", "*seasonRepository.CreateSeason").Msg("failed to build query")
		return models.Season{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&season.SeasonID); err != nil {
		log.Err(err).Str("func", "*seasonRepository.CreateSeason").Int64("series_id", season.SeriesID).Msg("error inserting season")

		if r.db.classify(err) == ForeignKeyViolation {
			return models.Season{}, fmt.Errorf("%w: %w", ErrSeriesNotFound, ErrParentNotFound)
		}
		return models.Season{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	season.Episodes = make([]models.Episode, 0)
	return season, nil
}

// CreateEpisode attaches a new episode to episode.SeasonID.
// An unknown season yields [ErrSeasonNotFound].
func (r *seasonRepository) CreateEpisode(ctx context.Context, episode models.Episode) (models.Episode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEpisodeQuery(r.db.builder, episode)
	if err != nil {
		log.Err(err).Str("func", "*seasonRepository.CreateEpisode").Msg("failed to build query")
		return models.Episode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&episode.EpisodeID); err != nil {
		log.Err(err).Str("func", "*seasonRepository.CreateEpisode").Int64("season_id", episode.SeasonID).Msg("error inserting episode")

		if r.db.classify(err) == ForeignKeyViolation {
			return models.Episode{}, fmt.Errorf("%w: %w", ErrSeasonNotFound, ErrParentNotFound)
		}
		return models.Episode{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return episode, nil
}
