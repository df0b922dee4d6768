package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"jansuvidha/i18n"
	"jansuvidha/models"
	"jansuvidha/nav"
)

type TranslationResponse struct {
	Language string            `json:"language"`
	Table    map[string]string `json:"table"`
}

type NavigationResponse struct {
	Language  string            `json:"language"`
	Languages []string          `json:"languages"`
	Menu      []models.MenuItem `json:"menu"`
}

func (a *API) GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := mux.Vars(r)["lang"]
	table, ok := i18n.Table(lang)
	if !ok {
		a.sendErrorResponse(w, fmt.Errorf("%w: language %q", errPageNotFound, lang))
		return
	}
	writeJSON(w, http.StatusOK, TranslationResponse{Language: lang, Table: table})
}

// Translate never fails: unknown languages and keys echo the key.
func (a *API) Translate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	writeJSON(w, http.StatusOK, map[string]string{
		"key":   vars["key"],
		"value": i18n.T(vars["lang"], vars["key"]),
	})
}

func (a *API) GetNavigation(w http.ResponseWriter, r *http.Request) {
	lang := a.language(r)
	writeJSON(w, http.StatusOK, NavigationResponse{
		Language:  lang,
		Languages: i18n.Supported(),
		Menu:      nav.Menu(lang),
	})
}

func (a *API) ResolvePath(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nav.Resolve(r.URL.Query().Get("path")))
}
