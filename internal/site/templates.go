// Package site holds the presentation layer: layout templates, their helper
// functions, and the data passed into each view.
package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const baseLayout = "base.html"

// Manager wraps the parsed layout set. Layouts are parsed once at startup;
// a parse failure is fatal to the caller.
type Manager struct {
	tpl *template.Template
}

// Load walks layoutsDir for .html files and parses them: base.html plus any
// partials/ first, page layouts after, so page blocks can override the base
// definitions.
func Load(layoutsDir string) (*Manager, error) {
	var baseFiles, pageFiles []string
	err := filepath.WalkDir(layoutsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		switch {
		case d.Name() == baseLayout && filepath.Dir(path) == filepath.Clean(layoutsDir):
			baseFiles = append([]string{path}, baseFiles...)
		case strings.HasPrefix(filepath.Dir(path), filepath.Join(layoutsDir, "partials")):
			baseFiles = append(baseFiles, path)
		default:
			pageFiles = append(pageFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding layout files in %s: %w", layoutsDir, err)
	}
	if len(baseFiles) == 0 || filepath.Base(baseFiles[0]) != baseLayout {
		return nil, fmt.Errorf("%s not found in layouts directory %s", baseLayout, layoutsDir)
	}

	tpl, err := template.New(baseLayout).Funcs(funcMap()).ParseFiles(baseFiles...)
	if err != nil {
		return nil, fmt.Errorf("parsing base layout and partials: %w", err)
	}
	if len(pageFiles) > 0 {
		if tpl, err = tpl.ParseFiles(pageFiles...); err != nil {
			return nil, fmt.Errorf("parsing page layouts: %w", err)
		}
	}
	return &Manager{tpl: tpl}, nil
}

// Render executes the named layout into w.
func (m *Manager) Render(w io.Writer, name string, data any) error {
	if m.tpl.Lookup(name) == nil {
		return fmt.Errorf("layout %q not found", name)
	}
	if err := m.tpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("executing layout %q: %w", name, err)
	}
	return nil
}

func funcMap() template.FuncMap {
	titleCaser := cases.Title(language.English)
	return template.FuncMap{
		"lower":     strings.ToLower,
		"titlecase": titleCaser.String,
		"isHTTPURL": IsHTTPURL,
		"isWide":    IsWideField,
	}
}

// IsHTTPURL reports whether s is a well-formed absolute http or https URL.
// Anything else (ftp://, bare hostnames, prose) renders as plain text.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsWideField reports whether a field renders as a full-width card rather
// than a grid cell. Overview and Description carry the long-form prose.
func IsWideField(title string) bool {
	switch strings.ToLower(strings.TrimSpace(title)) {
	case "overview", "description":
		return true
	}
	return false
}
