package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of an incoming
	// model; the wrapped validator error names the offending field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Messages returned by GenreService.AverageRating when there is no mean.
const (
	MessageNoSeriesInGenre    = "No series in this genre"
	MessageNoRatingsAvailable = "No ratings available"
)
