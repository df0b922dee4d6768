package models

// ChartKind is the chart shape handed to the renderer.
type ChartKind string

const (
	ChartDoughnut ChartKind = "doughnut"
	ChartBar      ChartKind = "bar"
	ChartLine     ChartKind = "line"
)

// ViewType selects which chart a category tab asks for.
type ViewType string

const (
	ViewOverview   ViewType = "overview"
	ViewCharts     ViewType = "charts"
	ViewTrends     ViewType = "trends"
	ViewComparison ViewType = "comparison"
)

// ViewTypes lists every chart view.
var ViewTypes = []ViewType{ViewOverview, ViewCharts, ViewTrends, ViewComparison}

// Dataset is one named series of a chart.
type Dataset struct {
	// Label is the series display name.
	Label string `json:"label"`
	// Data holds one value per chart label.
	Data []float64 `json:"data"`
	// BackgroundColor holds either one fill color for the whole series or
	// one color per value (doughnut slices).
	BackgroundColor []string `json:"backgroundColor,omitempty"`
	// BorderColor is the line or slice border color.
	BorderColor string `json:"borderColor,omitempty"`
	// BorderWidth is the slice border width in pixels.
	BorderWidth int `json:"borderWidth,omitempty"`
	// Tension is the line smoothing factor; zero draws straight segments.
	Tension float64 `json:"tension,omitempty"`
}

// ColorAt returns the fill color for value i, falling back to the first
// series color when only one is set.
func (d Dataset) ColorAt(i int) string {
	switch {
	case len(d.BackgroundColor) == 0:
		return ""
	case i < len(d.BackgroundColor):
		return d.BackgroundColor[i]
	default:
		return d.BackgroundColor[0]
	}
}

type LegendOptions struct {
	Position string `json:"position"`
}

type TooltipOptions struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

type TitleOptions struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type InteractionOptions struct {
	Mode      string `json:"mode"`
	Axis      string `json:"axis"`
	Intersect bool   `json:"intersect"`
}

type AxisOptions struct {
	Display      bool `json:"display"`
	TitleDisplay bool `json:"titleDisplay"`
}

type Scales struct {
	X AxisOptions `json:"x"`
	Y AxisOptions `json:"y"`
}

// ChartOptions is the display configuration of a chart.
type ChartOptions struct {
	Responsive          bool                `json:"responsive"`
	MaintainAspectRatio bool                `json:"maintainAspectRatio"`
	Legend              LegendOptions       `json:"legend"`
	Tooltip             TooltipOptions      `json:"tooltip"`
	Title               *TitleOptions       `json:"title,omitempty"`
	Interaction         *InteractionOptions `json:"interaction,omitempty"`
	// Scales is nil for charts without axes.
	Scales *Scales `json:"scales,omitempty"`
}

// ChartSpec is a declarative chart description independent of any
// rendering library.
type ChartSpec struct {
	Kind     ChartKind    `json:"type"`
	Labels   []string     `json:"labels"`
	Datasets []Dataset    `json:"datasets"`
	Options  ChartOptions `json:"options"`
}

// ComparisonMode picks what a comparison puts side by side.
type ComparisonMode string

const (
	CompareRegions ComparisonMode = "regions"
	CompareYears   ComparisonMode = "years"
)

// ComparisonSpec is the pair of regions or years a comparison is drawn for.
type ComparisonSpec struct {
	Mode      ComparisonMode `json:"mode"`
	Selectors [2]string      `json:"selectors"`
}
