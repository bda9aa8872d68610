package profile

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// headingMarker is the one heading depth profile sources use for sections.
const headingMarker = "### "

var imageRefPattern = regexp.MustCompile(`!\[[^\]]*\]\(\s*([^)\s]+)[^)]*\)`)

// stripFrontmatter removes an optional leading YAML frontmatter block.
// Authoring metadata is tolerated but plays no part in the data model; on a
// malformed block the raw text is used as-is.
func stripFrontmatter(raw []byte) []byte {
	var meta map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return raw
	}
	return body
}

// ScanSections splits profile text into its "### " sections in source order.
// A section's body runs from the line after its heading up to the next
// heading of the same depth or end of text; a body never consumes a later
// section. Text before the first heading is ignored.
func ScanSections(text string) []Section {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sections []Section
	var current *Section
	var body strings.Builder

	flush := func() {
		if current != nil {
			current.Body = strings.TrimSpace(body.String())
			sections = append(sections, *current)
		}
		body.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, headingMarker) {
			flush()
			current = &Section{Title: strings.TrimSpace(line[len(headingMarker):])}
			continue
		}
		if current != nil {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()

	return sections
}

// ExtractName finds the section titled "Name" (title comparison tolerates
// casing) and returns the first line of its body, trimmed. It returns def
// when no such section exists or the captured name is empty. Listing and
// detail rendering both go through here so they always agree on a source's
// display name.
func ExtractName(text, def string) string {
	for _, sec := range ScanSections(text) {
		if !strings.EqualFold(sec.Title, "Name") {
			continue
		}
		first, _, _ := strings.Cut(sec.Body, "\n")
		if name := strings.TrimSpace(first); name != "" {
			return name
		}
		return def
	}
	return def
}

// extractImageRef pulls the path out of the first markdown image reference
// in body, or "" when none matches.
func extractImageRef(body string) string {
	m := imageRefPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

// Parse derives a Profile from raw source text. Reserved sections are routed
// by lowercased title: "name" and "tags" are dropped, "logo" contributes
// LogoRef; everything else becomes a field in encounter order. Duplicate
// field titles stay as separate entries. A source with no headings at all is
// valid and yields a record with only the key as display name.
func Parse(key string, raw []byte) Profile {
	text := string(stripFrontmatter(raw))

	p := Profile{
		Key:         key,
		DisplayName: ExtractName(text, key),
	}

	for _, sec := range ScanSections(text) {
		switch strings.ToLower(sec.Title) {
		case "name", "tags":
			// Name was already consumed by ExtractName from a fresh scan.
		case "logo":
			if p.LogoRef == "" {
				p.LogoRef = extractImageRef(sec.Body)
			}
		default:
			p.Fields = append(p.Fields, Field{Title: sec.Title, Value: sec.Body})
		}
	}

	return p
}
