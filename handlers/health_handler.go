package handlers

import (
	"net/http"
	"runtime"
	"time"

	"jansuvidha/models"
)

type HealthResponse struct {
	Status  string         `json:"status"`
	Uptime  string         `json:"uptime"`
	Details *HealthDetails `json:"details,omitempty"`
}

type HealthDetails struct {
	Goroutines     int `json:"goroutines"`
	PendingUploads int `json:"pending_uploads"`
	Uploads        int `json:"uploads"`
	CachedCharts   int `json:"cached_charts"`
	Categories     int `json:"categories"`
	Regions        int `json:"regions"`
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (a *API) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "ok",
		Uptime: time.Since(a.started).Round(time.Second).String(),
		Details: &HealthDetails{
			Goroutines:     runtime.NumGoroutine(),
			PendingUploads: a.board.Pending(),
			Uploads:        len(a.board.Files()),
			CachedCharts:   a.images.Len(),
			Categories:     len(models.Categories),
			Regions:        len(a.tables.Regions()),
		},
	}
	writeJSON(w, http.StatusOK, resp)
}
