package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the control API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		if h.auth.enabled() {
			r.Use(h.withAuth)
		}

		r.Get("/api/events", h.streamEvents)

		r.Route("/api/connections", func(r chi.Router) {
			r.Post("/", h.connect)

			r.Route("/{connectionID}", func(r chi.Router) {
				r.Delete("/", h.disconnect)
				r.Get("/status", h.getStatus)

				r.Post("/pull", h.pull)
				r.Post("/push", h.push)
				r.Post("/protect", h.protect)

				r.Post("/schedule", h.startSchedule)
				r.Delete("/schedule", h.stopSchedule)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
