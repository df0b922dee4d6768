package models

// MetricRecord maps metric names to values for one (region-or-year, category) pair.
type MetricRecord map[string]float64

// Value returns the metric, zero when absent.
func (r MetricRecord) Value(metric string) float64 {
	return r[metric]
}

// MetricDefinition describes one comparison card.
type MetricDefinition struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

// Direction is the sign of a metric change.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

// DeltaNotAvailable is reported instead of a percentage when the baseline is zero.
const DeltaNotAvailable = "N/A"

// ComparisonResult is the outcome of comparing one metric between two selectors.
type ComparisonResult struct {
	Metric         string    `json:"metric"`
	Label          string    `json:"label,omitempty"`
	Unit           string    `json:"unit,omitempty"`
	SelectorA      string    `json:"selector_a"`
	SelectorB      string    `json:"selector_b"`
	NameA          string    `json:"name_a"`
	NameB          string    `json:"name_b"`
	ValueA         float64   `json:"value_a"`
	ValueB         float64   `json:"value_b"`
	PercentDelta   string    `json:"percent_delta"`
	DeltaAvailable bool      `json:"delta_available"`
	Direction      Direction `json:"direction"`
}

// Insight is a short narrative card under a comparison.
type Insight struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ComparisonPage is everything the comparison tool shows for one selection.
type ComparisonPage struct {
	Mode     ComparisonMode     `json:"mode"`
	Category Category           `json:"category"`
	Spec     ComparisonSpec     `json:"spec"`
	Metrics  []ComparisonResult `json:"metrics"`
	Chart    ChartSpec          `json:"chart"`
	Insights []Insight          `json:"insights"`
	// Years offered by the year selectors; other years still compare.
	Years []string `json:"years,omitempty"`
}
