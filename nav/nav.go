// Package nav resolves dashboard paths to pages and builds the localized
// sidebar and home page.
package nav

import (
	"strings"

	"jansuvidha/data"
	"jansuvidha/i18n"
	"jansuvidha/models"
)

// Page identifies a top-level screen.
type Page string

const (
	PageHome     Page = "home"
	PageCategory Page = "category"
	PageUpload   Page = "upload"
	PageRTI      Page = "rti"
	PageCompare  Page = "compare"
	PageNotFound Page = "not_found"
)

// Route is the outcome of resolving a path.
type Route struct {
	Page   Page              `json:"page"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
}

// Resolve maps a dashboard path to its page. Unknown paths and unknown
// category ids resolve to the not-found page.
func Resolve(path string) Route {
	clean := "/" + strings.Trim(path, "/")
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = "/" + strings.Trim(clean[:i], "/")
	}

	switch clean {
	case "/":
		return Route{Page: PageHome, Path: clean}
	case "/upload":
		return Route{Page: PageUpload, Path: clean}
	case "/rti":
		return Route{Page: PageRTI, Path: clean}
	case "/compare":
		return Route{Page: PageCompare, Path: clean}
	}

	if id, ok := strings.CutPrefix(clean, "/category/"); ok && !strings.Contains(id, "/") {
		if c, valid := models.ParseCategory(id); valid {
			return Route{Page: PageCategory, Path: clean, Params: map[string]string{"categoryId": string(c)}}
		}
	}
	return Route{Page: PageNotFound, Path: clean}
}

// Menu returns the sidebar entries translated into lang.
func Menu(lang string) []models.MenuItem {
	items := []models.MenuItem{{Key: "home", Path: "/"}}
	for _, c := range models.Categories {
		items = append(items, models.MenuItem{Key: string(c), Path: "/category/" + string(c)})
	}
	items = append(items,
		models.MenuItem{Key: "upload", Path: "/upload"},
		models.MenuItem{Key: "rti", Path: "/rti"},
		models.MenuItem{Key: "compare", Path: "/compare"},
	)
	for i := range items {
		items[i].Label = i18n.T(lang, items[i].Key)
	}
	return items
}

// Home returns the landing page with its text translated into lang.
func Home(tables *data.Tables, lang string) models.HomePage {
	h := tables.Home()
	h.Title = i18n.T(lang, h.Title)
	h.Subtitle = i18n.T(lang, h.Subtitle)
	h.Description = i18n.T(lang, h.Description)
	for i, f := range h.Features {
		h.Features[i].Title = i18n.T(lang, f.Title)
		h.Features[i].Description = i18n.T(lang, f.Description)
	}
	return h
}
