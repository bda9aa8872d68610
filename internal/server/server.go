// Package server exposes the dashboard views over HTTP: a listing of all
// companies and one detail page per profile, plus the static and logo asset
// directories. All state is read fresh from disk on every request.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kenneth-bframe/fusion-dashboards/internal/config"
	"github.com/kenneth-bframe/fusion-dashboards/internal/profile"
	"github.com/kenneth-bframe/fusion-dashboards/internal/site"
)

type Server struct {
	cfg    config.Config
	logger *slog.Logger
	store  *profile.Store
	tm     *site.Manager
}

func New(cfg config.Config, logger *slog.Logger, store *profile.Store, tm *site.Manager) *Server {
	return &Server{cfg: cfg, logger: logger, store: store, tm: tm}
}

// Handler builds the route tree. Asset routes are read-only file servers;
// everything else renders through the layout set.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/", s.handleHome)
	r.Get("/companies/{key}", s.handleCompany)

	logoFS := http.FileServer(http.Dir(s.cfg.AssetsDir))
	r.Handle("/logos/*", http.StripPrefix("/logos/", logoFS))

	staticFS := http.FileServer(http.Dir(s.cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", staticFS))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.renderNotFound(w, req, "")
	})

	return r
}

func (s *Server) page(req *http.Request) site.Page {
	return site.Page{
		SiteTitle: s.cfg.SiteTitle,
		BaseURL:   s.cfg.BaseURL,
		Themes:    s.cfg.Themes,
		Theme:     site.SelectTheme(req.URL.Query().Get("theme"), s.cfg.Themes),
	}
}
