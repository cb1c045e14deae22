// Package chunker splits note bodies into bounded-size chunks for embedding
// and search. It prefers paragraph boundaries, then line breaks, then
// spaces, and falls back to a hard character cut only when a single
// whitespace-free run exceeds the budget.
package chunker

import (
	"strings"
	"unicode"

	"noema/internal/notes"
)

// DefaultMaxChars is the default maximum characters per chunk. Keeps chunks
// small enough for embedding models.
const DefaultMaxChars = 512

// Chunk is a piece of a note's body, tagged with its source and position.
type Chunk struct {
	// Text of the chunk, trimmed and non-empty.
	Text string
	// NotePath references the note this chunk came from.
	NotePath string
	// Index of this chunk within the note (0, 1, 2, ...).
	Index int
}

// ChunkNote splits a single note's body into chunks of at most maxChars
// characters. A maxChars of 0 disables splitting and yields the whole body
// as one chunk. An empty body yields no chunks.
func ChunkNote(note notes.Note, maxChars int) []Chunk {
	body := strings.TrimSpace(note.Body)
	if body == "" {
		return nil
	}

	var chunks []Chunk
	for _, text := range splitText(body, maxChars) {
		t := strings.TrimSpace(text)
		if t == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			Text:     t,
			NotePath: note.Path,
			Index:    len(chunks),
		})
	}
	return chunks
}

// ChunkNotes chunks all notes, concatenating each note's chunks in note
// order. Chunk indices restart at zero for every note.
func ChunkNotes(ns []notes.Note, maxChars int) []Chunk {
	var chunks []Chunk
	for _, n := range ns {
		chunks = append(chunks, ChunkNote(n, maxChars)...)
	}
	return chunks
}

// splitText splits text into pieces of at most maxChars characters,
// preferring paragraph boundaries (blank lines).
func splitText(text string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{text}
	}

	var result []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len([]rune(para)) <= maxChars {
			result = append(result, para)
		} else {
			result = append(result, splitLongText(para, maxChars)...)
		}
	}

	// A body with no paragraph structure at all still gets chunked.
	if len(result) == 0 && strings.TrimSpace(text) != "" {
		result = splitLongText(strings.TrimSpace(text), maxChars)
	}
	return result
}

// splitLongText repeatedly cuts text at the best available boundary until
// the remainder fits within maxChars.
func splitLongText(text string, maxChars int) []string {
	var result []string
	remaining := []rune(text)
	for len(remaining) > 0 {
		if len(remaining) <= maxChars {
			result = append(result, strings.TrimSpace(string(remaining)))
			break
		}
		piece, rest := cutAtBoundary(remaining, maxChars)
		result = append(result, piece)
		remaining = rest
	}
	return result
}

// cutAtBoundary prefers a cut at the last line break within the lookahead
// window, then the last space, then a hard cut exactly at maxChars.
func cutAtBoundary(text []rune, maxChars int) (string, []rune) {
	window := text
	if len(window) > maxChars+1 {
		window = window[:maxChars+1]
	}
	if pos := lastRune(window, '\n'); pos >= 0 {
		return strings.TrimSpace(string(text[:pos])), trimLeading(text[pos+1:])
	}
	if pos := lastRune(window, ' '); pos >= 0 {
		return string(text[:pos]), trimLeading(text[pos+1:])
	}
	return string(text[:maxChars]), trimLeading(text[maxChars:])
}

func lastRune(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}

func trimLeading(rs []rune) []rune {
	for len(rs) > 0 && unicode.IsSpace(rs[0]) {
		rs = rs[1:]
	}
	return rs
}
