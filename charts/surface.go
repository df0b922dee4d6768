package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"jansuvidha/models"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	ErrUnknownFormat = errors.New("unknown image format")
	ErrNoChart       = errors.New("no chart drawn")
	ErrSurfaceClosed = errors.New("surface closed")
	ErrEmptyChart    = errors.New("chart has no data")
)

// ParseFormat accepts "png" and "svg"; an empty string means png.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatPNG):
		return FormatPNG, nil
	case string(FormatSVG):
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType is the MIME type of images in format f.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Instance is one chart bound to a surface. It is only valid until the
// surface draws again or is closed.
type Instance struct {
	Spec  models.ChartSpec
	chart renderable
}

func (i *Instance) release() {
	i.chart = nil
}

// Surface owns at most one live chart instance. Draw releases the previous
// instance before building the next one and Close releases the last.
type Surface struct {
	mu      sync.Mutex
	width   int
	height  int
	current *Instance
	closed  bool

	acquired int
	released int
}

func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Draw replaces the current chart with one built from spec.
func (s *Surface) Draw(spec models.ChartSpec) (*Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSurfaceClosed
	}
	s.releaseLocked()

	c, err := build(spec, s.width, s.height)
	if err != nil {
		return nil, err
	}
	s.current = &Instance{Spec: spec, chart: c}
	s.acquired++
	return s.current, nil
}

// Render writes the current chart to w.
func (s *Surface) Render(w io.Writer, format Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSurfaceClosed
	}
	if s.current == nil || s.current.chart == nil {
		return ErrNoChart
	}
	return s.current.chart.Render(format.provider(), w)
}

// Close releases the current chart. Further draws fail.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseLocked()
	s.closed = true
	return nil
}

// Live reports how many chart instances are currently held.
func (s *Surface) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquired - s.released
}

func (s *Surface) releaseLocked() {
	if s.current == nil {
		return
	}
	s.current.release()
	s.current = nil
	s.released++
}

// RenderSpec draws spec on a fresh surface and returns the encoded image.
func RenderSpec(spec models.ChartSpec, format Format, width, height int) ([]byte, error) {
	surface := NewSurface(width, height)
	defer surface.Close()

	if _, err := surface.Draw(spec); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := surface.Render(&buf, format); err != nil {
		return nil, fmt.Errorf("render %s chart: %w", spec.Kind, err)
	}
	return buf.Bytes(), nil
}

func build(spec models.ChartSpec, width, height int) (renderable, error) {
	if len(spec.Labels) == 0 || len(spec.Datasets) == 0 {
		return nil, ErrEmptyChart
	}

	title := ""
	if spec.Options.Title != nil && spec.Options.Title.Display {
		title = spec.Options.Title.Text
	}

	switch spec.Kind {
	case models.ChartDoughnut:
		return buildDoughnut(spec, title, width, height), nil
	case models.ChartBar:
		return buildBars(spec, title, width, height), nil
	case models.ChartLine:
		return buildLine(spec, title, width, height), nil
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
}

func buildDoughnut(spec models.ChartSpec, title string, width, height int) renderable {
	ds := spec.Datasets[0]
	values := make([]chart.Value, 0, len(spec.Labels))
	for i, label := range spec.Labels {
		if i >= len(ds.Data) {
			break
		}
		values = append(values, chart.Value{
			Label: label,
			Value: ds.Data[i],
			Style: chart.Style{
				FillColor:   parseColor(ds.ColorAt(i)),
				StrokeColor: parseColor(ds.BorderColor),
				StrokeWidth: float64(ds.BorderWidth),
			},
		})
	}
	return &chart.DonutChart{
		Title:  title,
		Width:  width,
		Height: height,
		Values: values,
	}
}

// buildBars lays grouped bars out side by side, one bar per label and
// dataset, since go-chart has no grouped bar type.
func buildBars(spec models.ChartSpec, title string, width, height int) renderable {
	bars := make([]chart.Value, 0, len(spec.Labels)*len(spec.Datasets))
	for i, label := range spec.Labels {
		for _, ds := range spec.Datasets {
			if i >= len(ds.Data) {
				continue
			}
			name := label
			if len(spec.Datasets) > 1 {
				name = label + " · " + ds.Label
			}
			bars = append(bars, chart.Value{
				Label: name,
				Value: ds.Data[i],
				Style: chart.Style{FillColor: parseColor(ds.ColorAt(i)), StrokeColor: parseColor(ds.ColorAt(i))},
			})
		}
	}

	slot := width / (len(bars)*2 + 1)
	if slot < 1 {
		slot = 1
	}
	return &chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   slot,
		BarSpacing: slot,
		Bars:       bars,
	}
}

func buildLine(spec models.ChartSpec, title string, width, height int) renderable {
	ticks := make([]chart.Tick, len(spec.Labels))
	xs := make([]float64, len(spec.Labels))
	for i, label := range spec.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	series := make([]chart.Series, 0, len(spec.Datasets))
	for _, ds := range spec.Datasets {
		n := len(ds.Data)
		if n > len(xs) {
			n = len(xs)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs[:n],
			YValues: ds.Data[:n],
			Style: chart.Style{
				StrokeColor: parseColor(ds.BorderColor),
				StrokeWidth: 2,
			},
		})
	}

	ch := &chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 12},
		},
		XAxis:  chart.XAxis{Ticks: ticks},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

// parseColor accepts #RRGGBB and #RGB; anything else yields the zero color
// so go-chart falls back to its palette.
func parseColor(s string) drawing.Color {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return drawing.Color{}
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 3 {
		return drawing.Color{}
	}
	return drawing.ColorFromHex(hex)
}
