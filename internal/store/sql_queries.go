package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/series-catalog/models"
)

var (
	userColumns    = []string{"user_id", "email", "password_hash"}
	genreColumns   = []string{"genre_id", "name"}
	seriesColumns  = []string{"series_id", "title", "description", "release_year", "rating"}
	seasonColumns  = []string{"season_id", "number", "release_year", "series_id"}
	episodeColumns = []string{"episode_id", "title", "duration_minutes", "season_id"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertGenreQuery(b sq.StatementBuilderType, genre models.Genre) (string, []any, error) {
	return b.Insert("genres").
		Columns("name").
		Values(genre.Name).
		Suffix("RETURNING genre_id").
		ToSql()
}

func buildSelectGenreQuery(b sq.StatementBuilderType, genreID int64) (string, []any, error) {
	return b.Select(genreColumns...).
		From("genres").
		Where(sq.Eq{"genre_id": genreID}).
		ToSql()
}

func buildListGenresQuery(b sq.StatementBuilderType, page models.Page) (string, []any, error) {
	return b.Select(genreColumns...).
		From("genres").
		OrderBy("genre_id").
		Limit(page.Limit).
		Offset(page.Skip).
		ToSql()
}

func buildSelectGenreRatingsQuery(b sq.StatementBuilderType, genreID int64) (string, []any, error) {
	return b.Select("s.rating").
		From("series s").
		Join("series_genres sg ON sg.series_id = s.series_id").
		Where(sq.Eq{"sg.genre_id": genreID}).
		OrderBy("s.series_id").
		ToSql()
}

func buildSelectExistingGenreIDsQuery(b sq.StatementBuilderType, genreIDs []int64) (string, []any, error) {
	return b.Select("genre_id").
		From("genres").
		Where(sq.Eq{"genre_id": genreIDs}).
		OrderBy("genre_id").
		ToSql()
}

func buildInsertSeriesQuery(b sq.StatementBuilderType, series models.SeriesCreate) (string, []any, error) {
	return b.Insert("series").
		Columns("title", "description", "release_year", "rating").
		Values(series.Title, series.Description, series.ReleaseYear, series.Rating).
		Suffix("RETURNING series_id").
		ToSql()
}

// buildInsertSeriesGenresQuery links one series to several genres in a single
// multi-row INSERT.
func buildInsertSeriesGenresQuery(b sq.StatementBuilderType, seriesID int64, genreIDs []int64) (string, []any, error) {
	insert := b.Insert("series_genres").Columns("series_id", "genre_id")
	for _, genreID := range genreIDs {
		insert = insert.Values(seriesID, genreID)
	}
	return insert.ToSql()
}

func buildSelectSeriesQuery(b sq.StatementBuilderType, seriesID int64) (string, []any, error) {
	return b.Select(seriesColumns...).
		From("series").
		Where(sq.Eq{"series_id": seriesID}).
		ToSql()
}

func buildListSeriesQuery(b sq.StatementBuilderType, query models.SeriesQuery) (string, []any, error) {
	sel := b.Select(seriesColumns...).From("series")
	if query.Title != "" {
		sel = sel.Where(sq.Eq{"title": query.Title})
	}

	return sel.OrderBy("series_id").
		Limit(query.Limit).
		Offset(query.Skip).
		ToSql()
}

func buildSelectSeriesGenresQuery(b sq.StatementBuilderType, seriesIDs []int64) (string, []any, error) {
	return b.Select("sg.series_id", "g.genre_id", "g.name").
		From("series_genres sg").
		Join("genres g ON g.genre_id = sg.genre_id").
		Where(sq.Eq{"sg.series_id": seriesIDs}).
		OrderBy("sg.series_id", "g.genre_id").
		ToSql()
}

func buildSelectSeasonsQuery(b sq.StatementBuilderType, seriesIDs []int64) (string, []any, error) {
	return b.Select(seasonColumns...).
		From("seasons").
		Where(sq.Eq{"series_id": seriesIDs}).
		OrderBy("series_id", "number", "season_id").
		ToSql()
}

func buildSelectEpisodesQuery(b sq.StatementBuilderType, seasonIDs []int64) (string, []any, error) {
	return b.Select(episodeColumns...).
		From("episodes").
		Where(sq.Eq{"season_id": seasonIDs}).
		OrderBy("episode_id").
		ToSql()
}

func buildInsertSeasonQuery(b sq.StatementBuilderType, season models.Season) (string, []any, error) {
	return b.Insert("seasons").
		Columns("number", "release_year", "series_id").
		Values(season.Number, season.ReleaseYear, season.SeriesID).
		Suffix("RETURNING season_id").
		ToSql()
}

func buildInsertEpisodeQuery(b sq.StatementBuilderType, episode models.Episode) (string, []any, error) {
	return b.Insert("episodes").
		Columns("title", "duration_minutes", "season_id").
		Values(episode.Title, episode.DurationMinutes, episode.SeasonID).
		Suffix("RETURNING episode_id").
		ToSql()
}
