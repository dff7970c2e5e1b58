package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/admin-login", h.adminLogin)
		r.Post("/api/memory-pages/{pageID}/verify-password", h.verifyPagePassword)
	})

	// admin surface, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/memory-pages", h.listPages)
		r.Post("/api/memory-pages", h.createPage)
		r.Get("/api/memory-pages/{pageID}", h.getPage)
		r.Put("/api/memory-pages/{pageID}", h.updatePage)
		r.Delete("/api/memory-pages/{pageID}", h.deletePage)

		r.Post("/api/upload", h.uploadFile)
	})

	// stored media, public so unlocked pages can render it
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir))))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
