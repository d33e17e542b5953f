package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("email is not a valid address")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyTitle         = errors.New("title is required")
	ErrInvalidReleaseYear = errors.New("release_year must not be negative")
	ErrInvalidNumber      = errors.New("number must not be negative")
	ErrInvalidDuration    = errors.New("duration_minutes must not be negative")
	ErrInvalidSeriesID    = errors.New("invalid series id")
	ErrInvalidSeasonID    = errors.New("invalid season id")
)
