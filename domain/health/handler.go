package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
)

// HealthResponse reports overall service health including the database.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// LivenessResponse reports that the process is up.
type LivenessResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// StatsResponse reports runtime statistics for monitoring.
type StatsResponse struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	Uptime       string `json:"uptime"`
}

// Handler serves liveness, health and stats endpoints.
type Handler struct {
	db        *sqlx.DB
	startTime time.Time
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		db:        db,
		startTime: time.Now(),
	}
}

// Live returns 200 whenever the process is running.
func (h *Handler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, LivenessResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Health pings the database and reports healthy or unhealthy. Unhealthy
// still answers 200 so status pages can read the body.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.db.PingContext(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		resp.Error = err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// Stats returns runtime statistics.
func (h *Handler) Stats(c echo.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return c.JSON(http.StatusOK, StatsResponse{
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		MemAlloc:     m.Alloc,
		MemSys:       m.Sys,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
	})
}
