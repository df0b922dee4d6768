package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansuvidha/data"
	"jansuvidha/models"
)

func TestSurfaceHoldsOneInstance(t *testing.T) {
	s := NewSelector(data.Load())
	surface := NewSurface(640, 360)

	for _, view := range []models.ViewType{models.ViewOverview, models.ViewCharts, models.ViewTrends} {
		spec, err := s.Select(models.CategoryHealth, view, nil)
		require.NoError(t, err)
		_, err = surface.Draw(spec)
		require.NoError(t, err)
		assert.Equal(t, 1, surface.Live())
	}

	// a failed draw still releases the previous chart
	_, err := surface.Draw(models.ChartSpec{Kind: models.ChartBar})
	assert.ErrorIs(t, err, ErrEmptyChart)
	assert.Equal(t, 0, surface.Live())
	assert.ErrorIs(t, surface.Render(&bytes.Buffer{}, FormatPNG), ErrNoChart)

	require.NoError(t, surface.Close())
	assert.Equal(t, 0, surface.Live())
	_, err = surface.Draw(models.ChartSpec{})
	assert.ErrorIs(t, err, ErrSurfaceClosed)
}

func TestSurfaceCloseReleases(t *testing.T) {
	s := NewSelector(data.Load())
	spec, err := s.Select(models.CategoryBudget, models.ViewCharts, nil)
	require.NoError(t, err)

	surface := NewSurface(640, 360)
	_, err = surface.Draw(spec)
	require.NoError(t, err)
	require.Equal(t, 1, surface.Live())

	require.NoError(t, surface.Close())
	assert.Equal(t, 0, surface.Live())
	assert.ErrorIs(t, surface.Render(&bytes.Buffer{}, FormatPNG), ErrSurfaceClosed)
}

func TestRenderSpec(t *testing.T) {
	s := NewSelector(data.Load())

	for _, view := range []models.ViewType{models.ViewOverview, models.ViewCharts, models.ViewTrends, models.ViewComparison} {
		spec, err := s.Select(models.CategoryAgriculture, view, nil)
		require.NoError(t, err)

		png, err := RenderSpec(spec, FormatPNG, 640, 360)
		require.NoError(t, err, view)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), view)

		svg, err := RenderSpec(spec, FormatSVG, 640, 360)
		require.NoError(t, err, view)
		assert.Contains(t, string(svg), "<svg", view)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = ParseFormat(" SVG ")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	_, err = ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
