package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jansuvidha/config"
	"jansuvidha/data"
	"jansuvidha/handlers"
	"jansuvidha/models"
	"jansuvidha/upload"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.DefaultConfig()
	tables := data.Load()
	board := upload.NewBoard(tables.SeedUploads(), upload.WithDelay(time.Hour))
	t.Cleanup(func() { board.Close() })
	api := handlers.New(tables, board, config.NewChartCache(time.Minute), zap.NewNop(), cfg)
	return newRouter(cfg, api, zap.NewNop())
}

func TestRouterCORS(t *testing.T) {
	h := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/charts/health/overview", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterCompresses(t *testing.T) {
	h := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/charts/health/trends", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestRunChartSpec(t *testing.T) {
	logger = zap.NewNop()
	chartFlags.spec = true
	t.Cleanup(func() { chartFlags.spec = false })

	var out bytes.Buffer
	require.NoError(t, runChart(&out, models.CategoryHealth, models.ViewTrends))

	var spec models.ChartSpec
	require.NoError(t, json.Unmarshal(out.Bytes(), &spec))
	assert.Equal(t, models.ChartLine, spec.Kind)
}

func TestRunChartFile(t *testing.T) {
	logger = zap.NewNop()
	chartFlags.format = "svg"
	chartFlags.width, chartFlags.height = 640, 360
	chartFlags.out = filepath.Join(t.TempDir(), "budget.svg")
	t.Cleanup(func() { chartFlags.out = "" })

	require.NoError(t, runChart(&bytes.Buffer{}, models.CategoryBudget, models.ViewCharts))
	b, err := os.ReadFile(chartFlags.out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestRunCompare(t *testing.T) {
	compareFlags.category = "health"
	var out bytes.Buffer
	require.NoError(t, runCompare(&out, "tamil-nadu", "karnataka", []string{"hospitals"}))

	var results []models.ComparisonResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "12.7", results[0].PercentDelta)

	compareFlags.category = "transport"
	assert.Error(t, runCompare(&out, "a", "b", nil))
	compareFlags.category = "health"
}

func TestWriteTable(t *testing.T) {
	var out bytes.Buffer
	writeTable(&out, "en", []models.ComparisonResult{
		{Metric: "hospitals", ValueA: 2456, ValueB: 2180, PercentDelta: "12.7", DeltaAvailable: true, Direction: models.DirectionUp},
		{Metric: "beds", ValueA: 500, PercentDelta: models.DeltaNotAvailable, Direction: models.DirectionUp},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "12.7% up"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], models.DeltaNotAvailable+" up"), lines[1])
	assert.NotContains(t, lines[1], "%")
}

func TestIsTerminalBuffer(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
