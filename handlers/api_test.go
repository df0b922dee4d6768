package handlers

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jansuvidha/config"
	"jansuvidha/data"
	"jansuvidha/models"
	"jansuvidha/upload"
)

func newTestServer(t *testing.T, delay time.Duration) (*httptest.Server, *upload.Board) {
	t.Helper()
	return newUploadServer(t, delay, config.DefaultConfig().UploadMaxBytes)
}

func newUploadServer(t *testing.T, delay time.Duration, maxBytes int64) (*httptest.Server, *upload.Board) {
	t.Helper()
	tables := data.Load()
	board := upload.NewBoard(tables.SeedUploads(), upload.WithDelay(delay), upload.WithMaxBytes(maxBytes))
	t.Cleanup(func() { board.Close() })

	cfg := config.DefaultConfig()
	cfg.UploadMaxBytes = maxBytes
	api := New(tables, board, config.NewChartCache(time.Minute), zap.NewNop(), cfg)

	r := mux.NewRouter()
	api.RegisterRoutes(r.PathPrefix("/api/v1").Subrouter())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, board
}

func getJSON(t *testing.T, srv *httptest.Server, path string, v any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/v1" + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	var h HealthResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/health/detailed", &h))
	assert.Equal(t, "ok", h.Status)
	require.NotNil(t, h.Details)
	assert.Equal(t, 2, h.Details.Uploads)
	assert.Equal(t, 6, h.Details.Categories)
}

func TestGetChart(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	var spec models.ChartSpec
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/charts/health/overview", &spec))
	assert.Equal(t, models.ChartDoughnut, spec.Kind)

	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/charts/health/comparison?a=tamil-nadu&b=karnataka", &spec))
	require.Len(t, spec.Datasets, 2)
	assert.Equal(t, "Tamil Nadu", spec.Datasets[0].Label)

	var e models.ErrorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/charts/transport/overview", &e))
	assert.Equal(t, http.StatusNotFound, e.Code)
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/charts/health/pie", &e))
}

func TestGetChartImageIsCached(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	fetch := func() *http.Response {
		resp, err := http.Get(srv.URL + "/api/v1/charts/education/charts/image?format=svg")
		require.NoError(t, err)
		return resp
	}

	first := fetch()
	first.Body.Close()
	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, "image/svg+xml", first.Header.Get("Content-Type"))
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))

	second := fetch()
	second.Body.Close()
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))

	var e models.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/charts/health/overview/image?format=gif", &e))
}

func TestGetCategoryPage(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	var page models.CategoryPage
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/pages/category/agriculture?tab=map", &page))
	assert.Equal(t, "map", page.Tab)
	assert.NotEmpty(t, page.MapData)
	assert.Nil(t, page.Chart)

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/pages/category/transport", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/pages/category/health?year=1901", nil))
}

func TestGetComparison(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	var r models.ComparisonResult
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/compare?metric=hospitals&a=tamil-nadu&b=karnataka", &r))
	assert.Equal(t, 2456.0, r.ValueA)
	assert.Equal(t, 2180.0, r.ValueB)
	assert.Equal(t, "12.7", r.PercentDelta)
	assert.Equal(t, models.DirectionUp, r.Direction)

	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/compare?metric=hospitals&a=tamil-nadu&b=atlantis", &r))
	assert.Equal(t, 0.0, r.ValueB)
	assert.Equal(t, models.DeltaNotAvailable, r.PercentDelta)
	assert.False(t, r.DeltaAvailable)

	var page models.ComparisonPage
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/compare?mode=years&a=2024&b=2023", &page))
	assert.Equal(t, models.CompareYears, page.Mode)
	assert.Len(t, page.Insights, 2)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/compare?a=tamil-nadu", nil))

	var old models.ComparisonResult
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/compare?metric=hospitals&a=2019&b=2024", &old))
	assert.Equal(t, "2019", old.SelectorA)
	assert.Zero(t, old.ValueA)
	assert.Equal(t, models.DirectionDown, old.Direction)
}

func TestExportComparison(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	resp, err := http.Get(srv.URL + "/api/v1/compare/export?category=education")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "comparison-education-tamil-nadu-vs-karnataka.xlsx")
	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(body.Bytes(), []byte("PK")))
}

func TestRTI(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	var list RTIListResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/rti?q=water", &list))
	require.Len(t, list.Results, 1)
	assert.Equal(t, "Rural Water Supply Scheme Progress", list.Results[0].Title)
	assert.Equal(t, 4, list.Total)
	assert.Equal(t, 1247, list.Stats.Total)

	var s models.RTISubmission
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/rti/"+list.Results[0].ID, &s))
	assert.Equal(t, list.Results[0], s)
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/rti/missing", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/rti?status=lost", nil))
}

func TestValidateRTI(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	post := func(body string) int {
		resp, err := http.Post(srv.URL+"/api/v1/rti/validate", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, post(`{"reference_number":"RTI/EDU/2024/099","title":"Midday meals","department":"Education"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"title":"Midday meals"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"reference_number":"x","title":"y","department":"Space"}`))
	assert.Equal(t, http.StatusBadRequest, post(`not json`))
}

func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	return sizedMultipartBody(t, 2048, names...)
}

func sizedMultipartBody(t *testing.T, size int, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := mw.CreateFormFile(uploadField, name)
		require.NoError(t, err)
		_, err = fw.Write(bytes.Repeat([]byte("x"), size))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateUploads(t *testing.T) {
	srv, board := newTestServer(t, 10*time.Millisecond)

	body, contentType := multipartBody(t, "health_q2.pdf")
	resp, err := http.Post(srv.URL+"/api/v1/uploads?wait=true", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []models.UploadedFile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, models.UploadCompleted, records[0].Status)
	assert.Equal(t, "2 KB", records[0].Size)
	assert.Equal(t, "PDF", records[0].Type)
	assert.Len(t, records[0].ExtractedData, 3)

	files := board.Files()
	require.Len(t, files, 3)
	assert.Equal(t, records[0].ID, files[0].ID)
}

func TestCreateUploadsRejectsType(t *testing.T) {
	srv, board := newTestServer(t, time.Hour)

	body, contentType := multipartBody(t, "report.pdf", "notes.docx")
	resp, err := http.Post(srv.URL+"/api/v1/uploads", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Len(t, board.Files(), 2)
}

func TestCreateUploadsCapsEachFile(t *testing.T) {
	srv, board := newUploadServer(t, time.Hour, 4<<20)

	body, contentType := sizedMultipartBody(t, 3<<20, "health_q2.pdf", "education_q2.pdf")
	resp, err := http.Post(srv.URL+"/api/v1/uploads", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var records []models.UploadedFile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "3 MB", rec.Size)
		assert.Equal(t, models.UploadProcessing, rec.Status)
	}
	assert.Len(t, board.Files(), 4)

	body, contentType = sizedMultipartBody(t, 4<<20+64<<10, "census.pdf")
	resp, err = http.Post(srv.URL+"/api/v1/uploads", contentType, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Len(t, board.Files(), 4)
}

func TestTranslations(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	var tr TranslationResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/i18n/hi", &tr))
	assert.Equal(t, "होम", tr.Table["home"])
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/i18n/fr", nil))

	var kv map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/i18n/fr/home", &kv))
	assert.Equal(t, "home", kv["value"])

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/navigation", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Language", "ta-IN,ta;q=0.9,en;q=0.5")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var navResp NavigationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&navResp))
	assert.Equal(t, "ta", navResp.Language)
	assert.Len(t, navResp.Menu, 10)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusFor(upload.ErrTooLarge))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(upload.ErrClosed))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}

func TestGetSitemap(t *testing.T) {
	srv, _ := newTestServer(t, time.Hour)

	resp, err := http.Get(srv.URL + "/api/v1/sitemap.xml")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var set URLSet
	require.NoError(t, xml.NewDecoder(resp.Body).Decode(&set))
	require.Len(t, set.URLs, 10)
	assert.Equal(t, "https://jansuvidha.in/", set.URLs[0].Loc)
	assert.Equal(t, 1.0, set.URLs[0].Priority)
	assert.Equal(t, "https://jansuvidha.in/category/health", set.URLs[1].Loc)
}
