package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/service"
	"github.com/MKhiriev/series-catalog/internal/store"
	"github.com/MKhiriev/series-catalog/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmailAlreadyRegistered:  http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrGenreAlreadyExists: http.StatusBadRequest,
	store.ErrSeriesNotFound:     http.StatusNotFound,
	store.ErrSeasonNotFound:     http.StatusNotFound,
	store.ErrGenreNotFound:      http.StatusNotFound,
	store.ErrParentNotFound:     http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidPagination:          http.StatusBadRequest,
	ErrInvalidID:                  http.StatusBadRequest,
}

// errorDetails is ordered: an error wrapping several sentinels gets the
// detail of the first one listed.
var errorDetails = []struct {
	target error
	detail string
}{
	{service.ErrEmailAlreadyRegistered, "Email already registered"},
	{store.ErrEmailAlreadyExists, "Email already registered"},
	{service.ErrInvalidCredentials, "Incorrect email or password"},
	{service.ErrTokenIsExpiredOrInvalid, "Could not validate credentials"},
	{ErrEmptyAuthorizationHeader, "Not authenticated"},
	{ErrInvalidAuthorizationHeader, "Could not validate credentials"},
	{store.ErrSeriesNotFound, "Series not found"},
	{store.ErrSeasonNotFound, "Season not found"},
	{store.ErrGenreNotFound, "Genre not found"},
	{store.ErrGenreAlreadyExists, "Genre already exists"},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the client-facing message for err. Validation
// errors carry their own text; unclassified errors never leak.
func detailFromError(err error, status int) string {
	for _, d := range errorDetails {
		if errors.Is(err, d.target) {
			return d.detail
		}
	}
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError logs err and answers with the mapped status and detail.
// 401 responses carry the bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detailFromError(err, status), status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Not Found", http.StatusNotFound)
}
