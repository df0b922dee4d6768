// Package charts turns a (category, view, comparison) selection into a
// declarative chart description and renders it.
package charts

import (
	"errors"
	"fmt"

	"jansuvidha/data"
	"jansuvidha/models"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownView     = errors.New("unknown chart view")
)

// Selector builds chart specs from the dataset tables.
type Selector struct {
	tables *data.Tables
}

func NewSelector(tables *data.Tables) *Selector {
	return &Selector{tables: tables}
}

// Select returns the chart for category c shown in the given view. cmp is
// only read by the comparison view and may be nil.
func (s *Selector) Select(c models.Category, view models.ViewType, cmp *models.ComparisonSpec) (models.ChartSpec, error) {
	if !c.Valid() {
		return models.ChartSpec{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}

	switch view {
	case models.ViewOverview:
		return s.overview(c)
	case models.ViewCharts:
		return s.bars(c)
	case models.ViewTrends:
		return s.trends(c)
	case models.ViewComparison:
		return s.comparison(c, cmp)
	default:
		return models.ChartSpec{}, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
}

func baseOptions() models.ChartOptions {
	return models.ChartOptions{
		Responsive:          true,
		MaintainAspectRatio: false,
		Legend:              models.LegendOptions{Position: "top"},
		Tooltip:             models.TooltipOptions{Mode: "index", Intersect: false},
		Scales: &models.Scales{
			X: models.AxisOptions{Display: true, TitleDisplay: true},
			Y: models.AxisOptions{Display: true, TitleDisplay: true},
		},
	}
}

func (s *Selector) overview(c models.Category) (models.ChartSpec, error) {
	o, ok := s.tables.Overview(c)
	if !ok {
		return models.ChartSpec{}, fmt.Errorf("%w: no overview data for %q", ErrUnknownCategory, c)
	}

	opts := baseOptions()
	// Doughnut charts have no axes.
	opts.Scales = nil

	return models.ChartSpec{
		Kind:   models.ChartDoughnut,
		Labels: o.Labels,
		Datasets: []models.Dataset{{
			Data:            o.Values,
			BackgroundColor: o.Colors,
			BorderWidth:     2,
			BorderColor:     "#fff",
		}},
		Options: opts,
	}, nil
}

func (s *Selector) bars(c models.Category) (models.ChartSpec, error) {
	b, ok := s.tables.Bars(c)
	if !ok {
		return models.ChartSpec{}, fmt.Errorf("%w: no bar data for %q", ErrUnknownCategory, c)
	}
	return models.ChartSpec{
		Kind:     models.ChartBar,
		Labels:   b.Labels,
		Datasets: b.Datasets,
		Options:  baseOptions(),
	}, nil
}

func (s *Selector) trends(c models.Category) (models.ChartSpec, error) {
	t, ok := s.tables.Trends(c)
	if !ok {
		return models.ChartSpec{}, fmt.Errorf("%w: no trend data for %q", ErrUnknownCategory, c)
	}

	opts := baseOptions()
	opts.Interaction = &models.InteractionOptions{Mode: "nearest", Axis: "x", Intersect: false}

	return models.ChartSpec{
		Kind:     models.ChartLine,
		Labels:   t.Labels,
		Datasets: t.Datasets,
		Options:  opts,
	}, nil
}

func (s *Selector) comparison(c models.Category, cmp *models.ComparisonSpec) (models.ChartSpec, error) {
	spec, err := s.comparisonData(c, cmp)
	if err != nil {
		return models.ChartSpec{}, err
	}
	spec.Options.Title = &models.TitleOptions{
		Display: true,
		Text:    c.Title() + " Comparison",
	}
	return spec, nil
}

func (s *Selector) comparisonData(c models.Category, cmp *models.ComparisonSpec) (models.ChartSpec, error) {
	if cmp == nil {
		return s.bars(c)
	}

	table, ok := s.tables.ComparisonChart(cmp.Mode)
	if !ok {
		return s.bars(c)
	}

	first, second := cmp.Selectors[0], cmp.Selectors[1]
	if cmp.Mode == models.CompareRegions {
		first, second = s.RegionLabel(first), s.RegionLabel(second)
	}

	return models.ChartSpec{
		Kind:   models.ChartBar,
		Labels: table.Labels,
		Datasets: []models.Dataset{
			{Label: first, Data: table.First, BackgroundColor: []string{table.Colors[0]}},
			{Label: second, Data: table.Second, BackgroundColor: []string{table.Colors[1]}},
		},
		Options: baseOptions(),
	}, nil
}

// RegionLabel returns the display name of a region id, or the id itself
// when the region is not in the table.
func (s *Selector) RegionLabel(id string) string {
	if name, ok := s.tables.RegionName(id); ok {
		return name
	}
	return id
}
