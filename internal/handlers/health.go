package handlers

import (
	"net/http"
	"time"

	"noema/internal/service"
)

// HealthHandler reports whether the index is built and how much it holds.
type HealthHandler struct {
	index *service.Index
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(index *service.Index) *HealthHandler {
	return &HealthHandler{index: index}
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Chunks    int    `json:"chunks"`
	Root      string `json:"root"`
}

// ServeHTTP handles GET /api/health. Returns 200 once the first index
// build has completed, 503 before that.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	httpStatus := http.StatusOK
	if !h.index.Ready() {
		status = "indexing"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Chunks:    h.index.Len(),
		Root:      h.index.Root(),
	})
}
