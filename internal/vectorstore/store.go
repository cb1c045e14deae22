// Package vectorstore holds chunk embeddings in memory and answers
// nearest-neighbor queries by cosine similarity. There is no persistence:
// a store lives for one indexing run and is discarded with it.
package vectorstore

import (
	"fmt"
	"math"
	"sort"

	"noema/internal/chunker"
)

// indexedChunk pairs a chunk with its embedding, normalized to unit length
// so cosine similarity reduces to a dot product.
type indexedChunk struct {
	chunk     chunker.Chunk
	embedding []float32
}

// SearchResult is a chunk with its similarity score against the query.
type SearchResult struct {
	Chunk chunker.Chunk
	Score float32
}

// Store is an in-memory vector store. It accumulates chunk/embedding pairs
// in insertion order and supports exhaustive similarity search, which is
// plenty at the scale of a personal note collection.
type Store struct {
	items []indexedChunk
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a chunk with its embedding. The embedding is normalized
// before storage; a zero-norm vector is stored unchanged instead of
// dividing by zero.
func (s *Store) Add(c chunker.Chunk, embedding []float32) {
	s.items = append(s.items, indexedChunk{
		chunk:     c,
		embedding: normalize(embedding),
	})
}

// AddBatch appends chunks with their embeddings pairwise, in order.
// The two slices must have equal length; a mismatch is a programming
// error, not a runtime condition.
func (s *Store) AddBatch(chunks []chunker.Chunk, embeddings [][]float32) {
	if len(chunks) != len(embeddings) {
		panic(fmt.Sprintf("vectorstore: %d chunks but %d embeddings", len(chunks), len(embeddings)))
	}
	for i := range chunks {
		s.Add(chunks[i], embeddings[i])
	}
}

// Search returns up to k chunks most similar to the query embedding,
// ordered by descending cosine similarity. Ties keep insertion order.
// An empty store, an empty query, or k <= 0 yields no results.
func (s *Store) Search(query []float32, k int) []SearchResult {
	if len(s.items) == 0 || len(query) == 0 || k <= 0 {
		return nil
	}

	q := normalize(query)
	results := make([]SearchResult, 0, len(s.items))
	for _, ic := range s.items {
		results = append(results, SearchResult{
			Chunk: ic.chunk,
			Score: dot(q, ic.embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k < len(results) {
		results = results[:k]
	}
	return results
}

// Len reports the number of indexed chunks.
func (s *Store) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the store holds no chunks.
func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)

	out := make([]float32, len(v))
	if norm <= 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// dot computes the dot product over the overlapping length of the two
// vectors. Dimensions normally match; see the pipeline, which only stores
// vectors from a single provider call.
func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
