package server

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/qdm12/geotrack/internal/guard"
)

//go:embed templates/*.html
var templatesFS embed.FS

type handlers struct {
	rootURL   string
	login     LoginFlow
	trackers  Trackers
	templates *template.Template
	logger    Logger
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(rootURL string, sessions SessionLoader, login LoginFlow,
	trackers Trackers, logger Logger, timeNow func() time.Time) http.Handler {
	rootURL = strings.TrimSuffix(rootURL, "/")

	handlers := &handlers{
		rootURL:   rootURL,
		login:     login,
		trackers:  trackers,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		logger:    logger,
		timeNow:   timeNow,
	}

	navigationGuard := guard.New(rootURL+"/", rootURL+"/home")

	router := chi.NewRouter()
	router.Use(middleware.CleanPath, handlers.logRequests, sessions.Middleware)

	router.Group(func(router chi.Router) {
		router.Use(navigationGuard.RedirectAuthenticated)
		router.Get(rootURL+"/", handlers.getLogin)
		router.Post(rootURL+"/", handlers.postLogin)
	})

	router.Group(func(router chi.Router) {
		router.Use(navigationGuard.RequireToken)
		router.Get(rootURL+"/home", handlers.getHome)
		router.Post(rootURL+"/home/search", handlers.postSearch)
		router.Post(rootURL+"/home/clear", handlers.postClear)
		router.Post(rootURL+"/home/history/select", handlers.postSelect)
		router.Post(rootURL+"/home/history/delete", handlers.postDelete)
		router.Post(rootURL+"/home/history/show", handlers.postShow)
		router.Post(rootURL+"/logout", handlers.postLogout)
		router.Get(rootURL+"/api/v1/state", handlers.getState)
	})

	router.NotFound(navigationGuard.NotFound)
	router.MethodNotAllowed(navigationGuard.NotFound)

	return router
}

func (h *handlers) render(w http.ResponseWriter, name string, data any) {
	setNoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.templates.ExecuteTemplate(w, name, data)
	if err != nil {
		h.logger.Error("rendering " + name + ": " + err.Error())
		httpError(w, http.StatusInternalServerError, "failed generating webpage")
	}
}

func (h *handlers) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.rootURL+"/home", http.StatusSeeOther)
}
