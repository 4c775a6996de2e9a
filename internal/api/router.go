// Package api assembles the HTTP surface: router, middleware, and handlers.
package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ameese/reading-log/internal/auth"
	"github.com/ameese/reading-log/internal/render"
	"github.com/ameese/reading-log/internal/store"
	"github.com/ameese/reading-log/web"
)

// Deps holds all dependencies required to build the router.
type Deps struct {
	Items *store.ItemStore
	Auth  *auth.TokenMiddleware
	Site  render.Config
}

// NewRouter assembles the chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Use(normalizePath)
	r.Use(cors)

	favicon, err := web.StaticFS.ReadFile("static/favicon.png")
	if err != nil {
		panic("read embedded favicon: " + err.Error())
	}

	h := &itemsHandler{items: deps.Items, site: deps.Site, favicon: favicon}

	r.Get("/", h.Page)
	r.Get("/reading", h.List)
	r.Get("/reading/page", h.Page)
	r.Get("/reading/html", h.Page)
	r.Get("/reading/markdown", h.Markdown)
	r.Get("/reading/rss", h.RSS)
	r.Get("/favicon.ico", h.Favicon)
	r.Get("/favicon.png", h.Favicon)
	r.With(deps.Auth.Authenticate).Post("/reading/add", h.Add)

	r.Handle("/metrics", promhttp.Handler())

	// Unmatched paths and wrong methods both surface as a JSON 404.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

// normalizePath strips trailing slashes before routing so /reading/ and
// /reading match the same route. An all-slash path becomes "/".
func normalizePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := strings.TrimRight(r.URL.Path, "/")
		if p == "" {
			p = "/"
		}
		r.URL.Path = p
		next.ServeHTTP(w, r)
	})
}

// cors adds the CORS headers to every response and answers any OPTIONS
// request with an empty 204 preflight.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Reading-Token")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
