package voxdoc

import (
	"context"
	"strings"
)

// Default chunking parameters, in characters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// Chunk represents a section of a document optimized for embedding and
// retrieval.
type Chunk struct {
	ID          string        `json:"id"`
	DocumentID  string        `json:"documentId"`
	Content     string        `json:"content"`
	ContentHash string        `json:"contentHash"`
	Metadata    ChunkMetadata `json:"metadata"`
}

// ChunkMetadata contains contextual information about a chunk.
type ChunkMetadata struct {
	// Position of the chunk in the original document, starting at 0.
	Position int `json:"position"`

	// Source of the parent document (file path or URL), for citation.
	Source string `json:"source,omitempty"`

	// Document name, denormalized for display.
	DocumentName string `json:"documentName,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.DocumentID == "" {
		return Errorf(EINVALID, "chunk document ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// Index stores chunk embeddings and provides nearest-neighbor search.
type Index interface {
	// Add embeds and stores the given chunks.
	Add(ctx context.Context, chunks []*Chunk) error

	// Search returns chunks ordered by similarity to the query.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)

	// Count returns the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// DeleteDocument removes all chunks belonging to a document.
	DeleteDocument(ctx context.Context, documentID string) error
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Filter results to specific document(s).
	DocumentIDs []string `json:"documentIds,omitempty"`

	// Maximum number of results to return.
	Limit int `json:"limit,omitempty"`

	// Minimum similarity score (0-1).
	MinScore float32 `json:"minScore,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// ChunkText splits text into overlapping chunks of roughly size characters.
// When a chunk would split mid-sentence, the break moves back to the last
// period or newline, provided that point lies past half the chunk size.
// Empty chunks are dropped.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = 0
		}
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := start + size
		sliceEnd := end
		if sliceEnd > len(text) {
			sliceEnd = len(text)
		}
		chunk := text[start:sliceEnd]

		// Prefer a sentence or line boundary when more text follows.
		if end < len(text) {
			lastPeriod := strings.LastIndexByte(chunk, '.')
			lastNewline := strings.LastIndexByte(chunk, '\n')
			breakPoint := lastPeriod
			if lastNewline > breakPoint {
				breakPoint = lastNewline
			}
			if breakPoint > size/2 {
				chunk = chunk[:breakPoint+1]
				end = start + breakPoint + 1
			}
		}

		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			chunks = append(chunks, trimmed)
		}

		// Guard forward progress for pathological overlap values.
		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}
