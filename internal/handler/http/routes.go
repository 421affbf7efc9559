package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.metrics.instrument, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", h.metrics.Handler())
	})

	router.Route(BlobsPath, func(r chi.Router) {
		r.Use(h.auth)
		r.With(h.limitBody).Put("/", h.putBlob)
		r.Get("/{owner}/{object}", h.getBlob)
		r.Delete("/{owner}/{object}", h.deleteBlob)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
