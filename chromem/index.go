// Package chromem provides a vector index implementation backed by the
// embedded chromem-go database.
package chromem

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"
	"github.com/pwielgus/voxdoc"
)

// collectionName is the single collection holding all document chunks.
const collectionName = "chunks"

// DefaultSearchLimit is the number of results returned when
// SearchOptions.Limit is unset.
const DefaultSearchLimit = 3

// Ensure Index implements voxdoc.Index at compile time.
var _ voxdoc.Index = (*Index)(nil)

// Index implements voxdoc.Index using chromem-go. The index is embedded:
// there is no client-server separation, vectors live in a local directory.
type Index struct {
	db   *chromem.DB
	coll *chromem.Collection
}

// NewIndex creates an Index persisted under path. An empty path creates an
// in-memory index, which is useful for tests.
func NewIndex(path string, embedder voxdoc.Embedder) (*Index, error) {
	var db *chromem.DB
	var err error

	if path == "" {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open vector database at %q: %w", path, err)
		}
	}

	embedFn := chromem.EmbeddingFunc(func(ctx context.Context, text string) ([]float32, error) {
		return embedder.Embed(ctx, text)
	})

	coll, err := db.GetOrCreateCollection(collectionName, nil, embedFn)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}

	return &Index{db: db, coll: coll}, nil
}

// Add embeds and stores the given chunks.
func (idx *Index) Add(ctx context.Context, chunks []*voxdoc.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]chromem.Document, 0, len(chunks))
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
		docs = append(docs, chromem.Document{
			ID:      chunk.ID,
			Content: chunk.Content,
			Metadata: map[string]string{
				"documentId":   chunk.DocumentID,
				"documentName": chunk.Metadata.DocumentName,
				"source":       chunk.Metadata.Source,
				"position":     strconv.Itoa(chunk.Metadata.Position),
				"contentHash":  chunk.ContentHash,
			},
		})
	}

	return idx.coll.AddDocuments(ctx, docs, runtime.NumCPU())
}

// Search returns chunks ordered by similarity to the query.
func (idx *Index) Search(ctx context.Context, query string, opts voxdoc.SearchOptions) ([]voxdoc.SearchResult, error) {
	if query == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "search query required")
	}

	total := idx.coll.Count()
	if total == 0 {
		return nil, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	// chromem rejects nResults larger than the candidate set, and the
	// candidate count under a metadata filter is unknown up front. Fetch
	// without a filter and post-filter instead; the collection is small.
	n := limit
	if len(opts.DocumentIDs) > 0 || opts.MinScore > 0 {
		n = total
	}
	if n > total {
		n = total
	}

	results, err := idx.coll.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	wanted := make(map[string]bool, len(opts.DocumentIDs))
	for _, id := range opts.DocumentIDs {
		wanted[id] = true
	}

	out := make([]voxdoc.SearchResult, 0, limit)
	for _, res := range results {
		if res.Similarity < opts.MinScore {
			continue
		}
		docID := res.Metadata["documentId"]
		if len(wanted) > 0 && !wanted[docID] {
			continue
		}

		position, _ := strconv.Atoi(res.Metadata["position"])
		out = append(out, voxdoc.SearchResult{
			Chunk: &voxdoc.Chunk{
				ID:          res.ID,
				DocumentID:  docID,
				Content:     res.Content,
				ContentHash: res.Metadata["contentHash"],
				Metadata: voxdoc.ChunkMetadata{
					Position:     position,
					Source:       res.Metadata["source"],
					DocumentName: res.Metadata["documentName"],
				},
			},
			Score: res.Similarity,
		})
		if len(out) == limit {
			break
		}
	}

	return out, nil
}

// Count returns the number of stored chunks.
func (idx *Index) Count(ctx context.Context) (int, error) {
	return idx.coll.Count(), nil
}

// DeleteDocument removes all chunks belonging to a document.
func (idx *Index) DeleteDocument(ctx context.Context, documentID string) error {
	if documentID == "" {
		return voxdoc.Errorf(voxdoc.EINVALID, "document ID required")
	}
	return idx.coll.Delete(ctx, map[string]string{"documentId": documentID}, nil)
}
