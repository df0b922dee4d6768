package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jansuvidha/charts"
	"jansuvidha/compare"
	"jansuvidha/config"
	"jansuvidha/models"
)

type MapResponse struct {
	Category models.Category   `json:"category"`
	States   []models.MapState `json:"states"`
}

// chartRequest reads the category and view path variables and, for the
// comparison view, the optional mode/a/b query parameters.
func chartRequest(r *http.Request) (models.Category, models.ViewType, *models.ComparisonSpec) {
	vars := mux.Vars(r)
	c := models.Category(vars["category"])
	view := models.ViewType(vars["view"])

	q := r.URL.Query()
	first, second := q.Get("a"), q.Get("b")
	if first == "" || second == "" {
		return c, view, nil
	}
	mode := models.ComparisonMode(q.Get("mode"))
	if mode == "" {
		mode = compare.ModeFor(first, second)
	}
	spec := compare.Spec(mode, first, second)
	return c, view, &spec
}

func (a *API) GetChart(w http.ResponseWriter, r *http.Request) {
	c, view, cmp := chartRequest(r)
	spec, err := a.selector.Select(c, view, cmp)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

// GetChartImage renders the chart server side. Images are cached per
// request since the tables never change.
func (a *API) GetChartImage(w http.ResponseWriter, r *http.Request) {
	c, view, cmp := chartRequest(r)
	format, err := charts.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}

	key := config.GetCacheKey("chart", c, view, format)
	if cmp != nil {
		key = config.GetCacheKey(key, cmp.Mode, cmp.Selectors[0], cmp.Selectors[1])
	}
	if img, ok := a.images.Image(key); ok {
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("X-Cache", "HIT")
		w.Write(img)
		return
	}

	spec, err := a.selector.Select(c, view, cmp)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	img, err := charts.RenderSpec(spec, format, ImageWidth, ImageHeight)
	if err != nil {
		a.sendErrorResponse(w, fmt.Errorf("render %s/%s: %w", c, view, err))
		return
	}
	a.images.Store(key, img)
	a.log.Debug("chart rendered", zap.String("key", key), zap.Int("bytes", len(img)))

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("X-Cache", "MISS")
	w.Write(img)
}

// GetMap returns the geographic tab data. Categories without their own
// map data show the health map.
func (a *API) GetMap(w http.ResponseWriter, r *http.Request) {
	c := models.Category(mux.Vars(r)["category"])
	if !c.Valid() {
		a.sendErrorResponse(w, fmt.Errorf("%w: %q", charts.ErrUnknownCategory, c))
		return
	}
	states, ok := a.tables.MapStates(c)
	if !ok {
		states, _ = a.tables.MapStates(models.CategoryHealth)
	}
	writeJSON(w, http.StatusOK, MapResponse{Category: c, States: states})
}
