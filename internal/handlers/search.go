package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"noema/internal/contextutil"
	"noema/internal/service"
)

const defaultSearchK = 5

// SearchHandler answers similarity queries against the current index.
type SearchHandler struct {
	index *service.Index
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(index *service.Index) *SearchHandler {
	return &SearchHandler{index: index}
}

// SearchResult is one ranked chunk in the search response.
type SearchResult struct {
	NotePath   string  `json:"note_path"`
	ChunkIndex int     `json:"chunk_index"`
	Text       string  `json:"text"`
	Score      float32 `json:"score"`
}

// SearchResponse is the body returned by the search endpoint.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// ServeHTTP handles GET /api/search?q=...&k=...
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	k := defaultSearchK
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "k must be a non-negative integer")
			return
		}
		k = parsed
	}

	results, err := h.index.Search(ctx, query, k)
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			writeError(w, http.StatusServiceUnavailable, "index not built yet")
			return
		}
		logger.ErrorContext(ctx, "search failed", "error", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	resp := SearchResponse{Query: query, Results: make([]SearchResult, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, SearchResult{
			NotePath:   res.Chunk.NotePath,
			ChunkIndex: res.Chunk.Index,
			Text:       res.Chunk.Text,
			Score:      res.Score,
		})
	}

	logger.InfoContext(ctx, "search served", "k", k, "results", len(resp.Results))
	writeJSON(w, http.StatusOK, resp)
}
