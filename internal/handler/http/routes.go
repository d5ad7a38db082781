package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/case", func(r chi.Router) {
		r.Post("/", h.createCase)
		r.Get("/", h.listCases)

		r.Route("/{caseID}", func(r chi.Router) {
			r.Get("/", h.getCase)
			r.Put("/", h.updateCase)
			r.Delete("/", h.deleteCase)
		})
	})

	return router
}
