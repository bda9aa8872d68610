// Package export renders the dashboard to static files: the listing page,
// one detail page per profile, and copies of the static and logo assets.
// The output is the same markup the live server produces, written to disk.
package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/kenneth-bframe/fusion-dashboards/internal/config"
	"github.com/kenneth-bframe/fusion-dashboards/internal/profile"
	"github.com/kenneth-bframe/fusion-dashboards/internal/site"
)

type Exporter struct {
	cfg    config.Config
	logger *slog.Logger
	store  *profile.Store
}

func New(cfg config.Config, logger *slog.Logger) *Exporter {
	return &Exporter{
		cfg:    cfg,
		logger: logger,
		store:  &profile.Store{Dir: cfg.ProfilesDir, AssetDir: cfg.AssetsDir},
	}
}

// Run performs one full export into cfg.OutputDir. Layouts are re-parsed on
// every run so a watch loop picks up template edits too. The output
// directory is recreated from scratch; page files are written atomically.
func (e *Exporter) Run() error {
	tm, err := site.Load(e.cfg.LayoutsDir)
	if err != nil {
		return err
	}

	entries, err := e.store.List()
	if err != nil {
		return err
	}

	out := e.cfg.OutputDir
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("cleaning output directory %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", out, err)
	}

	if err := e.copyDir(e.cfg.StaticDir, filepath.Join(out, "static")); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}
	if err := e.copyDir(e.cfg.AssetsDir, filepath.Join(out, "logos")); err != nil {
		return fmt.Errorf("copying logo assets: %w", err)
	}

	page := site.Page{
		SiteTitle: e.cfg.SiteTitle,
		BaseURL:   e.cfg.BaseURL,
		Themes:    e.cfg.Themes,
		Theme:     site.SelectTheme("", e.cfg.Themes),
	}

	intro, err := site.RenderIntro(e.cfg.IntroPath)
	if err != nil {
		return err
	}
	home := site.HomeData{Page: page, Intro: intro, Companies: entries}
	if err := e.writePage(tm, "home.html", home, filepath.Join(out, "index.html")); err != nil {
		return err
	}

	for _, entry := range entries {
		p, err := e.store.Get(entry.Key)
		if err != nil {
			return err
		}
		data := site.CompanyData{Page: page, Profile: p}
		if name, ok := e.store.PrimaryLogo(entry.Key); ok {
			data.PrimaryLogoURL = e.cfg.BaseURL + "/logos/" + url.PathEscape(name)
		}
		dest := filepath.Join(out, "companies", entry.Key, "index.html")
		if err := e.writePage(tm, "company.html", data, dest); err != nil {
			return err
		}
	}

	e.logger.Info("export complete", "companies", len(entries), "output", out)
	return nil
}

func (e *Exporter) writePage(tm *site.Manager, layout string, data any, dest string) error {
	var buf bytes.Buffer
	if err := tm.Render(&buf, layout, data); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := atomic.WriteFile(dest, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

// copyDir mirrors src into dst. A missing src is fine; the directory is
// simply skipped.
func (e *Exporter) copyDir(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return atomic.WriteFile(target, f)
	})
}
