// Package profile turns company profile markdown files into structured
// records for the dashboard views. Profiles are authored externally and are
// read-only here; every call reads fresh from disk.
package profile

import "errors"

// ErrNotFound is returned by Store.Get when no source file exists for a key.
var ErrNotFound = errors.New("profile: not found")

// Section is one titled block of a profile source, demarcated by a "### "
// heading. Body text excludes the heading line itself.
type Section struct {
	Title string
	Body  string
}

// Field is a generic (title, value) pair rendered as a card. Reserved
// sections (Name, Tags, Logo) never appear as fields.
type Field struct {
	Title string
	Value string
}

// Profile is the structured record derived from one profile source.
type Profile struct {
	// Key is the stable identifier, derived from the source filename.
	Key string
	// DisplayName comes from the first line of the "Name" section and falls
	// back to Key, so it is never empty.
	DisplayName string
	// LogoRef is the image path captured from the "Logo" section's markdown
	// image syntax. Empty when the section is absent or carries no image.
	LogoRef string
	// Fields holds the remaining sections in source order.
	Fields []Field
}

// Entry is one row of the listing view.
type Entry struct {
	Key         string
	DisplayName string
}
