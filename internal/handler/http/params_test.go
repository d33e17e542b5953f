package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/series-catalog/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		query    string
		wantPage models.Page
		wantErr  bool
	}{
		{query: "", wantPage: models.Page{Skip: 0, Limit: 100}},
		{query: "skip=20", wantPage: models.Page{Skip: 20, Limit: 100}},
		{query: "limit=0", wantPage: models.Page{Skip: 0, Limit: 0}},
		{query: "skip=3&limit=1000", wantPage: models.Page{Skip: 3, Limit: 1000}},
		{query: "skip=-1", wantErr: true},
		{query: "limit=1.5", wantErr: true},
		{query: "limit=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/series?"+tt.query, nil)

			page, err := pageFromRequest(req)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPagination)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}

func TestIDFromPath(t *testing.T) {
	withID := func(id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodGet, "/series/"+id, nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := idFromPath(withID("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = idFromPath(withID("forty-two"))
	assert.ErrorIs(t, err, ErrInvalidID)
}
