package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/kenneth-bframe/fusion-dashboards/internal/profile"
	"github.com/kenneth-bframe/fusion-dashboards/internal/site"
)

func (s *Server) handleHome(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		s.renderNotFound(w, req, "")
		return
	}

	entries, err := s.store.List()
	if err != nil {
		s.renderError(w, req, "listing profiles", err)
		return
	}
	intro, err := site.RenderIntro(s.cfg.IntroPath)
	if err != nil {
		s.renderError(w, req, "rendering intro", err)
		return
	}

	data := site.HomeData{
		Page:      s.page(req),
		Intro:     intro,
		Companies: entries,
	}
	s.render(w, req, "home.html", data)
}

func (s *Server) handleCompany(w http.ResponseWriter, req *http.Request) {
	// chi resolves the param from the decoded request path, so the key
	// arrives ready to use; unescaping again would corrupt keys that
	// contain a literal percent escape.
	key := chi.URLParam(req, "key")

	p, err := s.store.Get(key)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			s.renderNotFound(w, req, key)
			return
		}
		s.renderError(w, req, "loading profile", err)
		return
	}

	data := site.CompanyData{
		Page:    s.page(req),
		Profile: p,
	}
	if name, ok := s.store.PrimaryLogo(key); ok {
		data.PrimaryLogoURL = s.cfg.BaseURL + "/logos/" + url.PathEscape(name)
	}
	s.render(w, req, "company.html", data)
}

// render buffers template output so a mid-render failure can still turn into
// a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, req *http.Request, layout string, data any) {
	var buf bytes.Buffer
	if err := s.tm.Render(&buf, layout, data); err != nil {
		s.renderError(w, req, "rendering "+layout, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderNotFound(w http.ResponseWriter, req *http.Request, key string) {
	var buf bytes.Buffer
	data := site.NotFoundData{Page: s.page(req), Key: key}
	if err := s.tm.Render(&buf, "404.html", data); err != nil {
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, req *http.Request, during string, err error) {
	s.logger.Error("request failed", "during", during, "path", req.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
