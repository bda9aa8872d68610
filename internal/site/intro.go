package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var introMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// RenderIntro converts the optional site intro markdown file to HTML for the
// listing view. A missing file simply means no blurb; only read or convert
// failures on an existing file are errors.
func RenderIntro(path string) (template.HTML, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading intro file %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := introMarkdown.Convert(raw, &buf); err != nil {
		return "", fmt.Errorf("converting intro markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
