package handlers

import (
	"context"
	"net/http"

	"noema/internal/contextutil"
	"noema/internal/service"
)

// ReindexHandler triggers a full index rebuild.
type ReindexHandler struct {
	index *service.Index
}

// NewReindexHandler creates a new ReindexHandler.
func NewReindexHandler(index *service.Index) *ReindexHandler {
	return &ReindexHandler{index: index}
}

// ReindexResponse is the body returned when a rebuild has been started.
type ReindexResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ServeHTTP handles POST /api/reindex. The rebuild runs in the background
// so the request returns immediately.
func (h *ReindexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "reindex triggered via API")

	// Background context so the rebuild outlives the HTTP request.
	go func() {
		rebuildCtx := contextutil.WithLogger(context.Background(), logger)
		if err := h.index.Rebuild(rebuildCtx); err != nil {
			logger.ErrorContext(rebuildCtx, "reindex failed", "error", err)
			return
		}
		logger.InfoContext(rebuildCtx, "reindex completed", "chunks", h.index.Len())
	}()

	writeJSON(w, http.StatusAccepted, ReindexResponse{
		Message: "Reindexing started. Check server logs for progress.",
		Status:  "accepted",
	})
}
