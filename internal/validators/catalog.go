package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/series-catalog/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldTitle           = "title"
	FieldReleaseYear     = "release_year"
	FieldNumber          = "number"
	FieldDurationMinutes = "duration_minutes"
	FieldSeriesID        = "series_id"
	FieldSeasonID        = "season_id"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// CatalogValidator implements the Validator interface for the request models
// of the catalog: credentials, genres, series, seasons and episodes.
//
// It supports both value and pointer forms of every model and allows
// optional field-level scoping via variadic field name arguments.
// Ratings are not bounded.
type CatalogValidator struct {
}

// NewCatalogValidator constructs a new CatalogValidator
// and returns it as the Validator interface.
func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.Genre / *models.Genre
//   - models.SeriesCreate / *models.SeriesCreate
//   - models.Season / *models.Season
//   - models.Episode / *models.Episode
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Genre:
		return v.validateGenre(value, fields...)
	case *models.Genre:
		return v.validateGenre(*value, fields...)

	case models.SeriesCreate:
		return v.validateSeries(value, fields...)
	case *models.SeriesCreate:
		return v.validateSeries(*value, fields...)

	case models.Season:
		return v.validateSeason(value, fields...)
	case *models.Season:
		return v.validateSeason(*value, fields...)

	case models.Episode:
		return v.validateEpisode(value, fields...)
	case *models.Episode:
		return v.validateEpisode(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks the registration payload.
//
// Default validated fields: Email, Password.
func (v *CatalogValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
			if len(credentials.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateGenre(genre models.Genre, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(genre.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSeries checks a series create request.
//
// Default validated fields: ReleaseYear. Title may be empty, and genre ids
// that match no genre are dropped by the store.
func (v *CatalogValidator) validateSeries(series models.SeriesCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReleaseYear}
	}

	for _, f := range fields {
		switch f {
		case FieldReleaseYear:
			if series.ReleaseYear < 0 {
				return ErrInvalidReleaseYear
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSeason checks a season create request.
//
// Default validated fields: SeriesID, Number, ReleaseYear.
func (v *CatalogValidator) validateSeason(season models.Season, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSeriesID, FieldNumber, FieldReleaseYear}
	}

	for _, f := range fields {
		switch f {
		case FieldSeriesID:
			if season.SeriesID <= 0 {
				return ErrInvalidSeriesID
			}
		case FieldNumber:
			if season.Number < 0 {
				return ErrInvalidNumber
			}
		case FieldReleaseYear:
			if season.ReleaseYear < 0 {
				return ErrInvalidReleaseYear
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEpisode checks an episode create request.
//
// Default validated fields: SeasonID, Title, DurationMinutes.
func (v *CatalogValidator) validateEpisode(episode models.Episode, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSeasonID, FieldTitle, FieldDurationMinutes}
	}

	for _, f := range fields {
		switch f {
		case FieldSeasonID:
			if episode.SeasonID <= 0 {
				return ErrInvalidSeasonID
			}
		case FieldTitle:
			if strings.TrimSpace(episode.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDurationMinutes:
			if episode.DurationMinutes < 0 {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare addr-spec with a dotted domain, e.g.
// "user@example.com". Display names ("Bob <bob@example.com>") are rejected.
func isValidEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
