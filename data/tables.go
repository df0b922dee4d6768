// Package data holds the static civic datasets behind the dashboard.
//
// Tables are built once by Load and never mutated afterwards. Every accessor
// hands out copies, so callers are free to modify what they receive.
package data

import (
	"jansuvidha/models"
)

// Overview is the slice breakdown of a category's doughnut chart.
type Overview struct {
	Labels []string
	Values []float64
	Colors []string
}

// Series is a labelled chart table: shared labels plus datasets.
type Series struct {
	Labels   []string
	Datasets []models.Dataset
}

// ComparisonChart is the fixed data drawn for a two-way comparison.
type ComparisonChart struct {
	Labels []string
	First  []float64
	Second []float64
	Colors [2]string
}

// Tables is the immutable set of dataset tables.
type Tables struct {
	overview   map[models.Category]Overview
	bars       map[models.Category]Series
	trends     map[models.Category][]models.Dataset
	trendYears []string

	regionNames  map[string]string
	regionOrder  []string
	byRegion     map[string]map[models.Category]models.MetricRecord
	byYear       map[string]map[models.Category]models.MetricRecord
	metricDefs   map[models.Category][]models.MetricDefinition
	regionChart  ComparisonChart
	yearChart    ComparisonChart
	compareYears []string

	info      map[models.Category]models.CategoryInfo
	mapStates map[models.Category][]models.MapState
	states    []models.Option

	submissions []models.RTISubmission
	departments []string
	rtiStats    models.RTIStats

	uploads []models.UploadedFile

	home models.HomePage
}

// Load builds the dataset tables.
func Load() *Tables {
	t := &Tables{}
	loadCharts(t)
	loadComparisons(t)
	loadPages(t)
	loadRTI(t)
	loadUploads(t)
	return t
}

// Overview returns the doughnut breakdown for c.
func (t *Tables) Overview(c models.Category) (Overview, bool) {
	o, ok := t.overview[c]
	if !ok {
		return Overview{}, false
	}
	return Overview{
		Labels: cloneStrings(o.Labels),
		Values: cloneFloats(o.Values),
		Colors: cloneStrings(o.Colors),
	}, true
}

// Bars returns the per-region grouped bar data for c.
func (t *Tables) Bars(c models.Category) (Series, bool) {
	s, ok := t.bars[c]
	if !ok {
		return Series{}, false
	}
	return Series{Labels: cloneStrings(s.Labels), Datasets: cloneDatasets(s.Datasets)}, true
}

// Trends returns the 2020-2024 series for c.
func (t *Tables) Trends(c models.Category) (Series, bool) {
	ds, ok := t.trends[c]
	if !ok {
		return Series{}, false
	}
	return Series{Labels: cloneStrings(t.trendYears), Datasets: cloneDatasets(ds)}, true
}

// RegionName returns the display name of a region id.
func (t *Tables) RegionName(id string) (string, bool) {
	name, ok := t.regionNames[id]
	return name, ok
}

// Regions returns the selectable regions in display order.
func (t *Tables) Regions() []models.Option {
	out := make([]models.Option, 0, len(t.regionOrder))
	for _, id := range t.regionOrder {
		out = append(out, models.Option{Value: id, Label: t.regionNames[id]})
	}
	return out
}

// CompareYears returns the selectable comparison years, newest first.
func (t *Tables) CompareYears() []string {
	return cloneStrings(t.compareYears)
}

// Metrics returns the metric record of selector for c in the given mode.
func (t *Tables) Metrics(mode models.ComparisonMode, selector string, c models.Category) (models.MetricRecord, bool) {
	var table map[string]map[models.Category]models.MetricRecord
	switch mode {
	case models.CompareRegions:
		table = t.byRegion
	case models.CompareYears:
		table = t.byYear
	default:
		return nil, false
	}
	rec, ok := table[selector][c]
	if !ok {
		return nil, false
	}
	out := make(models.MetricRecord, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out, true
}

// MetricDefinitions returns the comparison cards shown for c. Categories
// without comparison data return an empty list.
func (t *Tables) MetricDefinitions(c models.Category) []models.MetricDefinition {
	defs := t.metricDefs[c]
	out := make([]models.MetricDefinition, len(defs))
	copy(out, defs)
	return out
}

// ComparisonChart returns the fixed chart data for a comparison mode.
func (t *Tables) ComparisonChart(mode models.ComparisonMode) (ComparisonChart, bool) {
	var src ComparisonChart
	switch mode {
	case models.CompareRegions:
		src = t.regionChart
	case models.CompareYears:
		src = t.yearChart
	default:
		return ComparisonChart{}, false
	}
	return ComparisonChart{
		Labels: cloneStrings(src.Labels),
		First:  cloneFloats(src.First),
		Second: cloneFloats(src.Second),
		Colors: src.Colors,
	}, true
}

// CategoryInfo returns the page header of c.
func (t *Tables) CategoryInfo(c models.Category) (models.CategoryInfo, bool) {
	info, ok := t.info[c]
	if !ok {
		return models.CategoryInfo{}, false
	}
	info.Stats = append([]models.Stat(nil), info.Stats...)
	return info, true
}

// MapStates returns the geographic tab data for c. Only health, education
// and sanitation carry map data.
func (t *Tables) MapStates(c models.Category) ([]models.MapState, bool) {
	states, ok := t.mapStates[c]
	if !ok {
		return nil, false
	}
	out := make([]models.MapState, len(states))
	for i, s := range states {
		m := make(map[string]float64, len(s.Metrics))
		for k, v := range s.Metrics {
			m[k] = v
		}
		out[i] = models.MapState{Name: s.Name, Metrics: m, Color: s.Color}
	}
	return out, true
}

// StateFilters returns the state options of the category page filter.
func (t *Tables) StateFilters() []models.Option {
	return append([]models.Option(nil), t.states...)
}

// Submissions returns the RTI seed list in insertion order.
func (t *Tables) Submissions() []models.RTISubmission {
	out := make([]models.RTISubmission, len(t.submissions))
	for i, s := range t.submissions {
		s.Documents = cloneStrings(s.Documents)
		out[i] = s
	}
	return out
}

// Departments returns the RTI departments, without the "All Departments" entry.
func (t *Tables) Departments() []string {
	return cloneStrings(t.departments)
}

func (t *Tables) RTIStats() models.RTIStats {
	return t.rtiStats
}

// SeedUploads returns the uploads present before any user action, newest first.
func (t *Tables) SeedUploads() []models.UploadedFile {
	out := make([]models.UploadedFile, len(t.uploads))
	for i, f := range t.uploads {
		out[i] = f.Clone()
	}
	return out
}

// Home returns the untranslated landing page content.
func (t *Tables) Home() models.HomePage {
	h := t.home
	h.Features = append([]models.Feature(nil), h.Features...)
	h.RecentUploads = append([]models.RecentUpload(nil), h.RecentUploads...)
	h.Trending = append([]models.TrendingDataset(nil), h.Trending...)
	return h
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

func cloneFloats(in []float64) []float64 {
	if in == nil {
		return nil
	}
	return append(make([]float64, 0, len(in)), in...)
}

func cloneDatasets(in []models.Dataset) []models.Dataset {
	out := make([]models.Dataset, len(in))
	for i, d := range in {
		d.Data = cloneFloats(d.Data)
		d.BackgroundColor = cloneStrings(d.BackgroundColor)
		out[i] = d
	}
	return out
}
