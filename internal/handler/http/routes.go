package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.StripSlashes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.register)
		r.Post("/token", h.token)

		r.Get("/series", h.listSeries)
		r.Get("/series/{id}", h.getSeries)
		r.Get("/genres", h.listGenres)

		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)

		r.Post("/series", h.createSeries)
		r.Post("/series/{id}/seasons", h.createSeason)
		r.Post("/seasons/{id}/episodes", h.createEpisode)

		r.Post("/genres", h.createGenre)
		r.Get("/genres/{id}/average-rating", h.averageRating)
	})

	router.NotFound(h.notFound)

	return router
}
