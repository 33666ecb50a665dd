package handlers

import (
	"context"
	"net/http"
	"time"
)

// Check represents the status of a health check.
type Check struct {
	Status  string `json:"status"`            // "pass" or "fail"
	Latency string `json:"latency,omitempty"` // e.g., "2ms"
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"` // "healthy" or "degraded"
	Version   string            `json:"version"`
	Checks    map[string]Check  `json:"checks"`
	Redis     map[string]string `json:"redis,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// Health handles the health check endpoint, including backend diagnostics
// when Redis reports them.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]Check)
	allHealthy := true

	redisStart := time.Now()
	health := h.store.HealthCheck(ctx)
	if !health.Available {
		checks["redis"] = Check{Status: "fail", Message: health.Error}
		allHealthy = false
	} else {
		checks["redis"] = Check{Status: "pass", Latency: time.Since(redisStart).String()}
	}

	var diagnostics map[string]string
	if health.Available && health.Version != "" {
		diagnostics = map[string]string{
			"version":           health.Version,
			"used_memory":       health.UsedMemory,
			"connected_clients": health.ConnectedClients,
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	h.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Version:   version,
		Checks:    checks,
		Redis:     diagnostics,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// RootResponse represents the root endpoint response.
type RootResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Health      string `json:"health"`
}

// Root handles the root endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, RootResponse{
		Name:        "Sub API",
		Description: "Assistente de Gestão Condominial",
		Version:     version,
		Health:      "/api/chat/health",
	})
}

// APIInfo describes the available endpoints.
func (h *Handler) APIInfo(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, map[string]interface{}{
		"api_name": "Sub API",
		"version":  version,
		"endpoints": map[string]string{
			"POST /api/chat/message":   "send a message to Sub",
			"GET /api/chat/history":    "fetch a session's conversation",
			"DELETE /api/chat/history": "clear a session's conversation",
			"GET /api/chat/sessions":   "list active sessions",
			"GET /api/chat/stats":      "aggregate session statistics",
			"GET /api/chat/health":     "service health",
		},
	})
}
