package voxdoc

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Document kinds.
const (
	DocumentKindFile = "file"
	DocumentKindWeb  = "web"
)

// Document represents an indexed source document: a local file or a
// fetched web page.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Source      string    `json:"source"` // file path or URL
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	ChunkCount  int       `json:"chunkCount"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// HashContent computes xxHash of content and returns it as a hex string.
// Matching hashes mark a document as unchanged on re-indexing.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	switch d.Kind {
	case DocumentKindFile, DocumentKindWeb:
	default:
		return Errorf(EINVALID, "invalid document kind %q", d.Kind)
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	// Returns ECONFLICT if a document with the same name exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocumentByName retrieves a document by its unique name.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByName(ctx context.Context, name string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document.
	// Returns ENOTFOUND if document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID     *string `json:"id"`
	Name   *string `json:"name"`
	Kind   *string `json:"kind"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	ContentHash *string `json:"contentHash"`
	ChunkCount  *int    `json:"chunkCount"`
}

// LoadResult holds the content read from a source file.
type LoadResult struct {
	// Title is derived from the file when the format carries one,
	// otherwise empty.
	Title string

	// Content is the plain text of the document.
	Content string
}

// Loader reads a document file into plain text.
// Implementations handle a single file format (e.g., plain text, PDF).
type Loader interface {
	Load(path string) (*LoadResult, error)
}
