package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/series-catalog/internal/service"
	"github.com/MKhiriev/series-catalog/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndDetailFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"email registered", service.ErrEmailAlreadyRegistered, http.StatusBadRequest, "Email already registered"},
		{"email unique index", fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest, "Email already registered"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect email or password"},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Could not validate credentials"},
		{"series parent", fmt.Errorf("%w: %w", store.ErrSeriesNotFound, store.ErrParentNotFound), http.StatusNotFound, "Series not found"},
		{"season parent", fmt.Errorf("%w: %w", store.ErrSeasonNotFound, store.ErrParentNotFound), http.StatusNotFound, "Season not found"},
		{"genre", store.ErrGenreNotFound, http.StatusNotFound, "Genre not found"},
		{"genre duplicate", store.ErrGenreAlreadyExists, http.StatusBadRequest, "Genre already exists"},
		{"validation", fmt.Errorf("%w: title is empty", service.ErrInvalidDataProvided), http.StatusBadRequest, "invalid data provided: title is empty"},
		{"pagination", fmt.Errorf("%w: skip=\"-1\"", ErrInvalidPagination), http.StatusBadRequest, "skip and limit must be non-negative integers: skip=\"-1\""},
		{"query failure", fmt.Errorf("query: %w", store.ErrExecutingQuery), http.StatusInternalServerError, "Internal Server Error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detailFromError(tt.err, status))
		})
	}
}
