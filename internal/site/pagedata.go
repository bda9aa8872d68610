package site

import (
	"html/template"

	"github.com/kenneth-bframe/fusion-dashboards/internal/profile"
)

// Page carries the state every view needs. Theme is explicit per-render
// state, never ambient: the selected theme travels from the request (or
// export default) down into the template.
type Page struct {
	SiteTitle string
	BaseURL   string
	Themes    []string
	Theme     string
}

// SelectTheme resolves a requested theme name against the configured list,
// falling back to the first configured theme when the request is empty or
// names an unknown theme.
func SelectTheme(requested string, themes []string) string {
	for _, th := range themes {
		if th == requested {
			return th
		}
	}
	if len(themes) > 0 {
		return themes[0]
	}
	return ""
}

// HomeData feeds the listing view.
type HomeData struct {
	Page
	Intro     template.HTML
	Companies []profile.Entry
}

// CompanyData feeds the detail view.
type CompanyData struct {
	Page
	Profile profile.Profile
	// PrimaryLogoURL points at the conventionally-named asset, when one
	// resolved. Independent of Profile.LogoRef.
	PrimaryLogoURL string
}

// NotFoundData feeds the not-found view.
type NotFoundData struct {
	Page
	Key string
}
