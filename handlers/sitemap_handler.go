package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jansuvidha/models"
	"jansuvidha/nav"
)

type URL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   float64  `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

const sitemapCacheDuration = 24 * time.Hour

// sitemapPaths lists every dashboard page that resolves to a real screen.
func sitemapPaths() []string {
	paths := []string{"/"}
	for _, c := range models.Categories {
		paths = append(paths, "/category/"+string(c))
	}
	return append(paths, "/upload", "/rti", "/compare")
}

// GetSitemap lists the dashboard pages for crawlers.
func (a *API) GetSitemap(w http.ResponseWriter, r *http.Request) {
	set := URLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	lastMod := a.started.Format("2006-01-02")
	base := strings.TrimRight(a.siteURL, "/")

	for _, path := range sitemapPaths() {
		route := nav.Resolve(path)
		if route.Page == nav.PageNotFound {
			continue
		}
		u := URL{Loc: base + path, LastMod: lastMod, ChangeFreq: "weekly", Priority: 0.6}
		switch route.Page {
		case nav.PageHome:
			u.ChangeFreq, u.Priority = "daily", 1.0
		case nav.PageCategory:
			u.Priority = 0.8
		}
		set.URLs = append(set.URLs, u)
	}

	output, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		http.Error(w, "Error generating sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(sitemapCacheDuration.Seconds())))
	fmt.Fprintf(w, "%s%s", xml.Header, output)
}
