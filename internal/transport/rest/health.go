package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/canvas-backend/internal/i18n"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// localeLister reports the loaded message catalogs.
type localeLister interface {
	Locales() []i18n.Locale
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	catalog localeLister
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, catalog localeLister, version string) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if db := h.checkDB(r.Context()); db.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: database latency, loaded catalogs and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"database": h.checkDB(r.Context()),
		"catalog":  h.checkCatalog(),
	}

	overallStatus, status := "ok", http.StatusOK
	for _, c := range components {
		if c.Status != "ok" {
			overallStatus, status = "down", http.StatusServiceUnavailable
		}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func (h *HealthHandler) checkCatalog() CompStatus {
	n := len(h.catalog.Locales())
	if n == 0 {
		return CompStatus{Status: "down", Detail: "no locales loaded"}
	}
	return CompStatus{Status: "ok", Detail: strconv.Itoa(n) + " locales"}
}
