package http

import (
	"net/http"

	"github.com/MKhiriev/series-catalog/internal/logger"
	"github.com/MKhiriev/series-catalog/internal/utils"
	"github.com/MKhiriev/series-catalog/models"
)

func (h *Handler) createSeries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SeriesCreate
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	series, err := h.services.SeriesService.CreateSeries(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("series_id", series.SeriesID).Int("genres", len(series.Genres)).Msg("series created")
	utils.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) listSeries(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	series, err := h.services.SeriesService.ListSeries(r.Context(), models.SeriesQuery{
		Page:  page,
		Title: r.URL.Query().Get("title"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) getSeries(w http.ResponseWriter, r *http.Request) {
	seriesID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	series, err := h.services.SeriesService.GetSeries(r.Context(), seriesID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) createSeason(w http.ResponseWriter, r *http.Request) {
	seriesID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var season models.Season
	if err = decodeJSON(r, &season); err != nil {
		writeError(w, r, err)
		return
	}
	season.SeriesID = seriesID

	created, err := h.services.SeriesService.CreateSeason(r.Context(), season)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) createEpisode(w http.ResponseWriter, r *http.Request) {
	seasonID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var episode models.Episode
	if err = decodeJSON(r, &episode); err != nil {
		writeError(w, r, err)
		return
	}
	episode.SeasonID = seasonID

	created, err := h.services.SeriesService.CreateEpisode(r.Context(), episode)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}
