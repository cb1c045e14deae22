// Package indexer orchestrates a full indexing run:
// scan notes, chunk, embed, store in memory.
package indexer

import (
	"context"
	"fmt"

	"noema/internal/chunker"
	"noema/internal/contextutil"
	"noema/internal/notes"
	"noema/internal/vectorstore"
)

// Embedder produces one embedding per input text, in input order.
// Any inability to do so surfaces as an error covering the whole call.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// BuildIndex runs the full pipeline against the notes under root and
// returns a freshly populated vector store. A maxChars of zero or below
// uses chunker.DefaultMaxChars. No embedding call is made when chunking
// produced nothing; an empty store is returned instead.
func BuildIndex(ctx context.Context, root string, embedder Embedder, maxChars int) (*vectorstore.Store, error) {
	logger := contextutil.LoggerFromContext(ctx)

	ns, err := notes.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}

	if maxChars <= 0 {
		maxChars = chunker.DefaultMaxChars
	}
	chunks := chunker.ChunkNotes(ns, maxChars)
	if len(chunks) == 0 {
		logger.InfoContext(ctx, "nothing to index", "root", root, "notes", len(ns))
		return vectorstore.New(), nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	embeddings, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	store := vectorstore.New()
	store.AddBatch(chunks, embeddings)

	logger.InfoContext(ctx, "index built", "root", root, "notes", len(ns), "chunks", store.Len())
	return store, nil
}
