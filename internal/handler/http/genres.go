package http

import (
	"net/http"

	"github.com/MKhiriev/series-catalog/internal/utils"
	"github.com/MKhiriev/series-catalog/models"
)

func (h *Handler) createGenre(w http.ResponseWriter, r *http.Request) {
	var genre models.Genre
	if err := decodeJSON(r, &genre); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.GenreService.CreateGenre(r.Context(), models.Genre{Name: genre.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listGenres(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	genres, err := h.services.GenreService.ListGenres(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, genres, http.StatusOK)
}

func (h *Handler) averageRating(w http.ResponseWriter, r *http.Request) {
	genreID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	average, err := h.services.GenreService.AverageRating(r.Context(), genreID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, average, http.StatusOK)
}
