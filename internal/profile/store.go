package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// profileExt marks a file in the source directory as a profile.
const profileExt = ".md"

// logoExts are tried in order when resolving a primary logo asset.
var logoExts = []string{".png", ".jpg", ".jpeg", ".svg", ".webp", ".gif"}

// Store reads profile sources and logo assets from disk. It holds no state
// beyond the two directory paths, so a single Store is safe to share across
// concurrent requests.
type Store struct {
	// Dir holds one markdown file per profile.
	Dir string
	// AssetDir holds logo images matched by filename convention.
	AssetDir string
}

// List enumerates the source directory and returns one Entry per recognized
// profile file, in enumeration order. File contents are only read to resolve
// the display name; sources that are unreadable mid-listing fall back to the
// key. An unreadable directory fails the whole listing.
func (s *Store) List() ([]Entry, error) {
	dirents, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading profile directory %s: %w", s.Dir, err)
	}

	var entries []Entry
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), profileExt) {
			continue
		}
		key := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		entry := Entry{Key: key, DisplayName: key}
		if raw, err := os.ReadFile(filepath.Join(s.Dir, d.Name())); err == nil {
			entry.DisplayName = ExtractName(string(stripFrontmatter(raw)), key)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Get loads and parses the profile for key. A missing source file is
// reported as ErrNotFound; the transport layer maps that to a not-found
// response rather than a failure. Every key List returns is fetchable here,
// including sources with an unconventionally-cased extension.
func (s *Store) Get(key string) (Profile, error) {
	raw, err := os.ReadFile(filepath.Join(s.Dir, key+profileExt))
	if err != nil {
		if !os.IsNotExist(err) {
			return Profile{}, fmt.Errorf("reading profile %q: %w", key, err)
		}
		raw, err = s.readAnyCase(key)
		if err != nil {
			return Profile{}, err
		}
	}
	return Parse(key, raw), nil
}

// readAnyCase resolves a source whose extension casing differs from the
// conventional ".md", using the same recognition rule as List.
func (s *Store) readAnyCase(key string) ([]byte, error) {
	dirents, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", key, ErrNotFound)
	}
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), profileExt) {
			continue
		}
		if strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())) != key {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.Dir, d.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading profile %q: %w", key, err)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("profile %q: %w", key, ErrNotFound)
}

// PrimaryLogo resolves the conventional logo asset for key: the key
// lowercased with spaces replaced by underscores, tried against a fixed set
// of image extensions in the asset directory. This is independent of any
// in-text logo reference; both may be absent.
func (s *Store) PrimaryLogo(key string) (string, bool) {
	base := strings.ReplaceAll(strings.ToLower(key), " ", "_")
	for _, ext := range logoExts {
		name := base + ext
		if info, err := os.Stat(filepath.Join(s.AssetDir, name)); err == nil && !info.IsDir() {
			return name, true
		}
	}
	return "", false
}
