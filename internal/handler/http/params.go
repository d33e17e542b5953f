package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/series-catalog/models"
	"github.com/go-chi/chi/v5"
)

// pageFromRequest reads skip/limit query parameters. Absent values fall back
// to [models.DefaultPage].
func pageFromRequest(r *http.Request) (models.Page, error) {
	page := models.DefaultPage()
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: skip=%q", ErrInvalidPagination, raw)
		}
		page.Skip = skip
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: limit=%q", ErrInvalidPagination, raw)
		}
		page.Limit = limit
	}

	return page, nil
}

func idFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
