package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBatch(t *testing.T) {
	var gotReq map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/embed", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float32{{1, 2}, {3, 4}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")
	vecs, err := client.EmbedBatch(context.Background(), []string{"one", "two"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []float32{1, 2}, vecs[0])
	assert.Equal(t, []float32{3, 4}, vecs[1])

	assert.Equal(t, "test-model", gotReq["model"])
	assert.Equal(t, []any{"one", "two"}, gotReq["input"])
}

func TestEmbedBatchEmptyInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")
	vecs, err := client.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vecs)
}

func TestEmbedBatchCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float32{{1, 2}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")
	_, err := client.EmbedBatch(context.Background(), []string{"one", "two"})
	assert.ErrorContains(t, err, "expected 2 embeddings, got 1")
}

func TestEmbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req["input"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float32{{0.5, 0.5}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")
	vec, err := client.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
}

func TestEmbedServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "missing-model")
	_, err := client.Embed(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorContains(t, err, "status 404")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", "")
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, DefaultModel, client.Model)
}
