package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts every endpoint on api, normally the /api/v1 subrouter.
func (a *API) RegisterRoutes(api *mux.Router) {
	// Health check
	api.HandleFunc("/health", a.Health).Methods(http.MethodGet)
	api.HandleFunc("/health/detailed", a.HealthDetailed).Methods(http.MethodGet)

	// Sitemap
	api.HandleFunc("/sitemap.xml", a.GetSitemap).Methods(http.MethodGet)

	// Localization and navigation
	api.HandleFunc("/i18n/{lang}", a.GetTranslations).Methods(http.MethodGet)
	api.HandleFunc("/i18n/{lang}/{key}", a.Translate).Methods(http.MethodGet)
	api.HandleFunc("/navigation", a.GetNavigation).Methods(http.MethodGet)
	api.HandleFunc("/resolve", a.ResolvePath).Methods(http.MethodGet)

	// Pages
	api.HandleFunc("/pages/home", a.GetHomePage).Methods(http.MethodGet)
	api.HandleFunc("/pages/category/{categoryId}", a.GetCategoryPage).Methods(http.MethodGet)

	// Charts
	api.HandleFunc("/charts/{category}/{view}", a.GetChart).Methods(http.MethodGet)
	api.HandleFunc("/charts/{category}/{view}/image", a.GetChartImage).Methods(http.MethodGet)
	api.HandleFunc("/map/{category}", a.GetMap).Methods(http.MethodGet)

	// Comparison
	api.HandleFunc("/compare", a.GetComparison).Methods(http.MethodGet)
	api.HandleFunc("/compare/export", a.ExportComparison).Methods(http.MethodGet)

	// RTI
	api.HandleFunc("/rti", a.ListRTI).Methods(http.MethodGet)
	api.HandleFunc("/rti/validate", a.ValidateRTI).Methods(http.MethodPost)
	api.HandleFunc("/rti/{id}", a.GetRTI).Methods(http.MethodGet)

	// Uploads
	api.HandleFunc("/uploads", a.ListUploads).Methods(http.MethodGet)
	api.HandleFunc("/uploads", a.CreateUploads).Methods(http.MethodPost)
	api.HandleFunc("/uploads/{id}", a.GetUpload).Methods(http.MethodGet)
}
