// Package ingest provides document indexing orchestration.
// It coordinates loading, chunking, deduplication, embedding, and storage
// of documents.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/bloom"
	"golang.org/x/sync/errgroup"
)

// batchSize is the number of chunks embedded and stored per index call.
const batchSize = 16

// Indexer orchestrates the indexing of documents.
type Indexer struct {
	// Loaders maps file extensions (with dot, lowercase) to loaders.
	Loaders map[string]voxdoc.Loader

	Documents voxdoc.DocumentService
	Index     voxdoc.Index

	// Chunking parameters. Zero values use the domain defaults.
	ChunkSize    int
	ChunkOverlap int

	// Concurrency bounds parallel embedding batches. Defaults to 4.
	Concurrency int
}

// Result holds the outcome of an indexing operation.
type Result struct {
	Document *voxdoc.Document
	Chunks   int
	Skipped  int // duplicate chunks dropped
}

// ProgressEvent reports progress during indexing.
type ProgressEvent struct {
	Completed int
	Total     int
}

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// IndexFile loads, chunks, embeds and stores a document file. The name
// defaults to the file's base name without extension. Re-indexing an
// unchanged document returns ECONFLICT unless force is set.
func (i *Indexer) IndexFile(ctx context.Context, path, name string, force bool, progress ProgressFunc) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := i.Loaders[ext]
	if !ok {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "unsupported file format %q", ext)
	}

	loaded, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(loaded.Content) == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "document %q is empty", path)
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	doc := &voxdoc.Document{
		Name:    name,
		Kind:    voxdoc.DocumentKindFile,
		Source:  path,
		Title:   loaded.Title,
		Content: loaded.Content,
	}

	return i.index(ctx, doc, force, progress)
}

// IndexPage stores a fetched web page as an indexed document. The name
// defaults to the page title.
func (i *Indexer) IndexPage(ctx context.Context, page *voxdoc.WebPage, name string, force bool, progress ProgressFunc) (*Result, error) {
	if page == nil || strings.TrimSpace(page.Content) == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "page has no content")
	}

	if name == "" {
		name = page.Title
	}
	if name == "" {
		name = page.URL
	}

	doc := &voxdoc.Document{
		Name:    name,
		Kind:    voxdoc.DocumentKindWeb,
		Source:  page.URL,
		Title:   page.Title,
		Content: page.Content,
	}

	return i.index(ctx, doc, force, progress)
}

// index chunks, embeds and stores a prepared document.
func (i *Indexer) index(ctx context.Context, doc *voxdoc.Document, force bool, progress ProgressFunc) (*Result, error) {
	doc.ContentHash = voxdoc.HashContent(doc.Content)

	existing, err := i.Documents.FindDocumentByName(ctx, doc.Name)
	switch voxdoc.ErrorCode(err) {
	case "":
		if existing.ContentHash == doc.ContentHash && !force {
			return nil, voxdoc.Errorf(voxdoc.ECONFLICT,
				"document %q is already indexed and unchanged", doc.Name)
		}
		// Replace: drop the stale chunks and record.
		if err := i.Index.DeleteDocument(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to remove stale chunks: %w", err)
		}
		if err := i.Documents.DeleteDocument(ctx, existing.ID); err != nil {
			return nil, err
		}
	case voxdoc.ENOTFOUND:
	default:
		return nil, err
	}

	if err := i.Documents.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	chunks, skipped := i.buildChunks(doc)
	if len(chunks) == 0 {
		_ = i.Documents.DeleteDocument(ctx, doc.ID)
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "document %q produced no chunks", doc.Name)
	}

	if err := i.addChunks(ctx, chunks, progress); err != nil {
		// Keep the invariant: a document row exists iff its chunks are
		// in the index.
		_ = i.Index.DeleteDocument(ctx, doc.ID)
		_ = i.Documents.DeleteDocument(ctx, doc.ID)
		return nil, err
	}

	count := len(chunks)
	updated, err := i.Documents.UpdateDocument(ctx, doc.ID, voxdoc.DocumentUpdate{ChunkCount: &count})
	if err != nil {
		return nil, err
	}

	return &Result{Document: updated, Chunks: count, Skipped: skipped}, nil
}

// buildChunks splits the document and drops duplicate chunks. Duplicates
// happen in repetitive documents where overlapping windows land on
// identical text.
func (i *Indexer) buildChunks(doc *voxdoc.Document) ([]*voxdoc.Chunk, int) {
	parts := voxdoc.ChunkText(doc.Content, i.ChunkSize, i.ChunkOverlap)

	seen := bloom.NewFilter(uint(len(parts))+1, 0.0001)
	chunks := make([]*voxdoc.Chunk, 0, len(parts))
	skipped := 0

	for pos, part := range parts {
		hash := voxdoc.HashContent(part)
		if seen.Test(hash) {
			skipped++
			continue
		}
		seen.Add(hash)

		chunks = append(chunks, &voxdoc.Chunk{
			ID:          uuid.New().String(),
			DocumentID:  doc.ID,
			Content:     part,
			ContentHash: hash,
			Metadata: voxdoc.ChunkMetadata{
				Position:     pos,
				Source:       doc.Source,
				DocumentName: doc.Name,
			},
		})
	}

	return chunks, skipped
}

// addChunks embeds and stores chunks in bounded-concurrency batches.
func (i *Indexer) addChunks(ctx context.Context, chunks []*voxdoc.Chunk, progress ProgressFunc) error {
	concurrency := i.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(chunks)
	completed := 0
	done := make(chan int)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for n := range done {
			completed += n
			if progress != nil {
				progress(ProgressEvent{Completed: completed, Total: total})
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}
		batch := chunks[start:end]

		g.Go(func() error {
			if err := i.Index.Add(gctx, batch); err != nil {
				return fmt.Errorf("failed to index chunks: %w", err)
			}
			done <- len(batch)
			return nil
		})
	}

	err := g.Wait()
	close(done)
	<-drained
	return err
}
