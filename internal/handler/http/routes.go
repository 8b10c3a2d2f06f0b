package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const jsonContentType = "application/json"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, jsonContentType, "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType(jsonContentType))
		r.Post("/auth/user/register", h.register)
		r.Post("/auth/user/login", h.login)
	})

	// routes acting on the account named in the path
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(middleware.AllowContentType(jsonContentType))
		r.Put("/auth/user/editprofile/{id}", h.editProfile)
		r.Put("/auth/user/resetpassword/{id}", h.resetPassword)
	})

	router.Get("/github/repos", h.listRepositories)
	router.Get("/github/repos/{repoName}/commits", h.listCommits)

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/info", h.getBuildInfo)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
