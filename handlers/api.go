package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"jansuvidha/charts"
	"jansuvidha/compare"
	"jansuvidha/config"
	"jansuvidha/data"
	"jansuvidha/i18n"
	"jansuvidha/models"
	"jansuvidha/rti"
	"jansuvidha/upload"
	"jansuvidha/views"
)

// Default size of rendered chart images.
const (
	ImageWidth  = 800
	ImageHeight = 450
)

// API serves the dashboard endpoints over one set of dataset tables.
type API struct {
	tables    *data.Tables
	selector  *charts.Selector
	evaluator *compare.Evaluator
	board     *upload.Board
	images    *config.ChartCache
	log       *zap.Logger

	defaultLang string
	siteURL     string
	maxUpload   int64
	started     time.Time
}

// New wires the API. board and images are owned by the caller.
func New(tables *data.Tables, board *upload.Board, images *config.ChartCache, logger *zap.Logger, cfg *config.Config) *API {
	selector := charts.NewSelector(tables)
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		tables:      tables,
		selector:    selector,
		evaluator:   compare.NewEvaluator(tables, selector),
		board:       board,
		images:      images,
		log:         logger,
		defaultLang: cfg.DefaultLanguage,
		siteURL:     cfg.SiteURL,
		maxUpload:   cfg.UploadMaxBytes,
		started:     time.Now(),
	}
}

// language picks the response language: the lang query parameter, then
// Accept-Language, then the configured default.
func (a *API) language(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); i18n.IsSupported(lang) {
		return lang
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		return i18n.Negotiate(header)
	}
	if i18n.IsSupported(a.defaultLang) {
		return a.defaultLang
	}
	return i18n.Default
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (a *API) sendErrorResponse(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		a.log.Error("request failed", zap.Error(err))
	} else {
		a.log.Debug("request rejected", zap.Error(err), zap.Int("code", code))
	}
	writeJSON(w, code, models.ErrorResponse{Error: err.Error(), Code: code})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, charts.ErrUnknownCategory),
		errors.Is(err, rti.ErrNotFound),
		errors.Is(err, upload.ErrNotFound),
		errors.Is(err, errPageNotFound):
		return http.StatusNotFound
	case errors.Is(err, charts.ErrUnknownView),
		errors.Is(err, charts.ErrUnknownFormat),
		errors.Is(err, views.ErrInvalidAction),
		errors.Is(err, rti.ErrMissingField),
		errors.Is(err, rti.ErrUnknownDept),
		errors.Is(err, rti.ErrBadResponseDate),
		errors.Is(err, upload.ErrNoFiles),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, upload.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, upload.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, upload.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var (
	errPageNotFound = errors.New("page not found")
	errBadRequest   = errors.New("bad request")
)
