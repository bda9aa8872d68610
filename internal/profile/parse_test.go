package profile

import (
	"reflect"
	"testing"
)

func TestScanSections_Boundaries(t *testing.T) {
	text := "intro text ignored\n" +
		"### Name\nAcme Corp\n\n" +
		"### Overview\nBuilds tokamaks.\nSecond line.\n" +
		"### Funding\n$2B\n"

	sections := ScanSections(text)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d: %+v", len(sections), sections)
	}

	want := []Section{
		{Title: "Name", Body: "Acme Corp"},
		{Title: "Overview", Body: "Builds tokamaks.\nSecond line."},
		{Title: "Funding", Body: "$2B"},
	}
	if !reflect.DeepEqual(sections, want) {
		t.Errorf("sections mismatch:\n got %+v\nwant %+v", sections, want)
	}
}

func TestScanSections_BodyStopsAtNextMarker(t *testing.T) {
	text := "### A\nalpha\n### B\nbeta\n"
	sections := ScanSections(text)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Body != "alpha" {
		t.Errorf("section A body consumed past the next marker: %q", sections[0].Body)
	}
}

func TestScanSections_DeeperHeadingsStayInBody(t *testing.T) {
	text := "### Approach\nMagnetic confinement.\n#### Detail\nnested\n"
	sections := ScanSections(text)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Body != "Magnetic confinement.\n#### Detail\nnested" {
		t.Errorf("unexpected body: %q", sections[0].Body)
	}
}

func TestScanSections_CRLF(t *testing.T) {
	sections := ScanSections("### Name\r\nAcme\r\n### Tags\r\nenergy\r\n")
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Body != "Acme" {
		t.Errorf("CRLF body not normalized: %q", sections[0].Body)
	}
}

func TestScanSections_NoHeadings(t *testing.T) {
	if got := ScanSections("just prose\nno headings here\n"); len(got) != 0 {
		t.Errorf("expected no sections, got %+v", got)
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		def  string
		want string
	}{
		{
			name: "first line only",
			text: "### Name\nAcme Corp\nExtra line\n### Tags\nenergy",
			def:  "acme",
			want: "Acme Corp",
		},
		{
			name: "no name section falls back to default",
			text: "### Overview\nstuff",
			def:  "Helion Energy",
			want: "Helion Energy",
		},
		{
			name: "empty body falls back to default",
			text: "### Name\n\n### Tags\nx",
			def:  "tae",
			want: "tae",
		},
		{
			name: "case-tolerant title",
			text: "### NAME\nZap Energy\n",
			def:  "zap",
			want: "Zap Energy",
		},
		{
			name: "no headings at all",
			text: "plain text",
			def:  "key",
			want: "key",
		},
		{
			name: "leading whitespace trimmed",
			text: "### Name\n  Acme Corp  \n",
			def:  "acme",
			want: "Acme Corp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractName(tt.text, tt.def); got != tt.want {
				t.Errorf("ExtractName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_ReservedSections(t *testing.T) {
	raw := []byte("### Name\nAcme Corp\n" +
		"### Tags\nfusion, tokamak\n" +
		"### Logo\n![Acme](acme.png)\n" +
		"### Overview\nBuilds reactors.\n")

	p := Parse("acme", raw)

	if p.DisplayName != "Acme Corp" {
		t.Errorf("DisplayName = %q, want %q", p.DisplayName, "Acme Corp")
	}
	if p.LogoRef != "acme.png" {
		t.Errorf("LogoRef = %q, want %q", p.LogoRef, "acme.png")
	}
	if len(p.Fields) != 1 || p.Fields[0].Title != "Overview" {
		t.Fatalf("expected only the Overview field, got %+v", p.Fields)
	}
	for _, f := range p.Fields {
		switch f.Title {
		case "Name", "name", "NAME", "Tags", "tags", "Logo", "logo":
			t.Errorf("reserved section %q leaked into fields", f.Title)
		}
	}
}

func TestParse_ReservedTitlesAnyCase(t *testing.T) {
	raw := []byte("### NAME\nAcme\n### tags\nx\n### LOGO\n![a](a.png)\n### Website\nhttps://acme.com\n")
	p := Parse("acme", raw)
	if len(p.Fields) != 1 || p.Fields[0].Title != "Website" {
		t.Errorf("case-insensitive reserved filtering failed, fields: %+v", p.Fields)
	}
	if p.DisplayName != "Acme" {
		t.Errorf("DisplayName = %q, want Acme", p.DisplayName)
	}
	if p.LogoRef != "a.png" {
		t.Errorf("LogoRef = %q, want a.png", p.LogoRef)
	}
}

func TestParse_LogoSectionWithoutImage(t *testing.T) {
	p := Parse("acme", []byte("### Logo\nno image syntax here\n### Overview\nx\n"))
	if p.LogoRef != "" {
		t.Errorf("LogoRef = %q, want empty", p.LogoRef)
	}
	if len(p.Fields) != 1 {
		t.Errorf("Logo section leaked into fields: %+v", p.Fields)
	}
}

func TestParse_DuplicateFieldTitlesRetained(t *testing.T) {
	p := Parse("acme", []byte("### Milestone\nfirst\n### Milestone\nsecond\n"))
	if len(p.Fields) != 2 {
		t.Fatalf("expected duplicate titles kept as separate fields, got %+v", p.Fields)
	}
	if p.Fields[0].Value != "first" || p.Fields[1].Value != "second" {
		t.Errorf("field order not preserved: %+v", p.Fields)
	}
}

func TestParse_NoHeadings(t *testing.T) {
	p := Parse("acme", []byte("free-form notes, no structure"))
	if p.DisplayName != "acme" || p.LogoRef != "" || len(p.Fields) != 0 {
		t.Errorf("unexpected record for headingless source: %+v", p)
	}
}

func TestParse_Idempotent(t *testing.T) {
	raw := []byte("### Name\nAcme Corp\n### Overview\nx\n### Website\nhttps://acme.com\n")
	a := Parse("acme", raw)
	b := Parse("acme", raw)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Parse is not a pure function of its input:\n a=%+v\n b=%+v", a, b)
	}
}

func TestParse_FrontmatterStripped(t *testing.T) {
	raw := []byte("---\ndraft: true\n---\n### Name\nAcme Corp\n")
	p := Parse("acme", raw)
	if p.DisplayName != "Acme Corp" {
		t.Errorf("frontmatter not stripped before scanning, DisplayName = %q", p.DisplayName)
	}
}

func TestExtractImageRef(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"![Acme](acme.png)", "acme.png"},
		{"text before ![logo](images/acme.svg) text after", "images/acme.svg"},
		{"![first](a.png) ![second](b.png)", "a.png"},
		{"no image here", ""},
		{"![broken](", ""},
	}
	for _, tt := range tests {
		if got := extractImageRef(tt.body); got != tt.want {
			t.Errorf("extractImageRef(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
