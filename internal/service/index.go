// Package service holds the long-lived index used by the HTTP server.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"noema/internal/indexer"
	"noema/internal/vectorstore"
)

// ErrNotReady is returned when search is attempted before the first
// successful index build.
var ErrNotReady = errors.New("index not ready")

// Embedder is the embedding provider the index depends on.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Index owns the current search index for a notes root. Every rebuild
// constructs a fresh store and swaps it in whole; a published store is
// never mutated, so readers need no coordination beyond the swap.
type Index struct {
	root     string
	embedder Embedder
	maxChars int

	mu    sync.RWMutex
	store *vectorstore.Store
}

// NewIndex creates an index for root. It holds no data until the first
// Rebuild succeeds.
func NewIndex(root string, embedder Embedder, maxChars int) *Index {
	return &Index{
		root:     root,
		embedder: embedder,
		maxChars: maxChars,
	}
}

// Rebuild runs the full pipeline and swaps in the resulting store.
// On failure the previous store stays in place.
func (ix *Index) Rebuild(ctx context.Context) error {
	store, err := indexer.BuildIndex(ctx, ix.root, ix.embedder, ix.maxChars)
	if err != nil {
		return err
	}

	ix.mu.Lock()
	ix.store = store
	ix.mu.Unlock()
	return nil
}

// Search embeds the query and returns up to k most similar chunks.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]vectorstore.SearchResult, error) {
	ix.mu.RLock()
	store := ix.store
	ix.mu.RUnlock()

	if store == nil {
		return nil, ErrNotReady
	}

	embedding, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return store.Search(embedding, k), nil
}

// Ready reports whether an index build has completed.
func (ix *Index) Ready() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.store != nil
}

// Len reports the number of indexed chunks, 0 before the first build.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.store == nil {
		return 0
	}
	return ix.store.Len()
}

// Root returns the notes root this index covers.
func (ix *Index) Root() string {
	return ix.root
}
