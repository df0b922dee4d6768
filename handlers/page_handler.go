package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"jansuvidha/models"
	"jansuvidha/nav"
	"jansuvidha/views"
)

func (a *API) GetHomePage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nav.Home(a.tables, a.language(r)))
}

// GetCategoryPage replays the tab, state and year query parameters onto a
// fresh category view.
func (a *API) GetCategoryPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["categoryId"]
	c, ok := models.ParseCategory(id)
	if !ok {
		a.sendErrorResponse(w, fmt.Errorf("%w: category %q", errPageNotFound, id))
		return
	}

	v := views.NewCategoryView(c)
	q := r.URL.Query()
	if tab := q.Get("tab"); tab != "" {
		if err := v.SelectTab(tab); err != nil {
			a.sendErrorResponse(w, err)
			return
		}
	}
	if state := q.Get("state"); state != "" {
		if err := v.SelectState(state, a.tables.StateFilters()); err != nil {
			a.sendErrorResponse(w, err)
			return
		}
	}
	if year := q.Get("year"); year != "" {
		if err := v.SelectYear(year); err != nil {
			a.sendErrorResponse(w, err)
			return
		}
	}

	page, found, err := v.Page(a.tables, a.selector)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	if !found {
		a.sendErrorResponse(w, fmt.Errorf("%w: category %q", errPageNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, page)
}
