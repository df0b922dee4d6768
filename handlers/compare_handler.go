package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"jansuvidha/compare"
	"jansuvidha/models"
	"jansuvidha/views"
)

// comparisonView applies the mode, category, a and b query parameters to
// the default comparison view.
func (a *API) comparisonView(r *http.Request) (views.ComparisonView, error) {
	v := views.NewComparisonView()
	q := r.URL.Query()

	if c := q.Get("category"); c != "" {
		if err := v.SelectCategory(models.Category(c)); err != nil {
			return v, err
		}
	}

	first, second := q.Get("a"), q.Get("b")
	mode := models.ComparisonMode(q.Get("mode"))
	if mode == "" && first != "" && second != "" {
		mode = compare.ModeFor(first, second)
	}
	if mode != "" {
		if err := v.SetMode(mode); err != nil {
			return v, err
		}
	}
	if first == "" && second == "" {
		return v, nil
	}
	if first == "" || second == "" {
		return v, fmt.Errorf("%w: both a and b are required", errBadRequest)
	}

	if v.Mode == models.CompareYears {
		return v, v.SelectYears(first, second)
	}
	return v, v.SelectRegions(first, second)
}

// GetComparison returns the comparison page, or a single metric result
// when the metric parameter is set.
func (a *API) GetComparison(w http.ResponseWriter, r *http.Request) {
	v, err := a.comparisonView(r)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}

	if metric := r.URL.Query().Get("metric"); metric != "" {
		spec := v.Spec()
		writeJSON(w, http.StatusOK, a.evaluator.Metric(spec.Mode, metric, spec.Selectors[0], spec.Selectors[1], v.Category))
		return
	}

	page, err := v.Page(a.evaluator, a.tables)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (a *API) ExportComparison(w http.ResponseWriter, r *http.Request) {
	v, err := a.comparisonView(r)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	page, err := v.Page(a.evaluator, a.tables)
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}

	var buf bytes.Buffer
	if err := compare.ExportXLSX(page, &buf); err != nil {
		a.sendErrorResponse(w, err)
		return
	}

	spec := v.Spec()
	filename := fmt.Sprintf("comparison-%s-%s-vs-%s.xlsx", v.Category, spec.Selectors[0], spec.Selectors[1])
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}
