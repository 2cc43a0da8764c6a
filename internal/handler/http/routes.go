package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/movies", h.listMovies)
		r.Post("/api/movies", h.createMovie)
		r.Get("/api/movies/{id}", h.getMovie)
		r.Get("/api/movies/{id}/reviews", h.listMovieReviews)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/healthz", h.healthz)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/movies/{id}", h.updateMovie)
		r.Delete("/api/movies/{id}", h.deleteMovie)

		r.Get("/api/reviews/search", h.searchReviews)
		r.Post("/api/reviews", h.createReview)
		r.Put("/api/reviews/{id}", h.updateReview)
		r.Delete("/api/reviews/{id}", h.deleteReview)
	})

	return router
}
