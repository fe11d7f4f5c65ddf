package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pwielgus/voxdoc"
)

// Compile-time interface verification.
var _ voxdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements voxdoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *voxdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if existing, err := s.FindDocumentByName(ctx, doc.Name); err == nil && existing != nil {
		return voxdoc.Errorf(voxdoc.ECONFLICT, "document %q already exists", doc.Name)
	} else if voxdoc.ErrorCode(err) != voxdoc.ENOTFOUND && err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.IndexedAt = time.Now().UTC()
	if doc.ContentHash == "" {
		doc.ContentHash = voxdoc.HashContent(doc.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, kind, source, title, content, content_hash, chunk_count, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Name, doc.Kind, doc.Source, doc.Title, doc.Content, doc.ContentHash,
		doc.ChunkCount, doc.IndexedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*voxdoc.Document, error) {
	return s.findOne(ctx, "id = ?", id)
}

// FindDocumentByName retrieves a document by its unique name.
func (s *DocumentService) FindDocumentByName(ctx context.Context, name string) (*voxdoc.Document, error) {
	return s.findOne(ctx, "name = ?", name)
}

func (s *DocumentService) findOne(ctx context.Context, where string, arg any) (*voxdoc.Document, error) {
	var doc voxdoc.Document
	var indexedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, source, title, content, content_hash, chunk_count, indexed_at
		FROM documents
		WHERE `+where,
		arg,
	).Scan(&doc.ID, &doc.Name, &doc.Kind, &doc.Source, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.ChunkCount, &indexedAt)

	if err == sql.ErrNoRows {
		return nil, voxdoc.Errorf(voxdoc.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.IndexedAt, err = time.Parse(time.RFC3339, indexedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse indexed_at: %w", err)
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter voxdoc.DocumentFilter) ([]*voxdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, kind, source, title, content, content_hash, chunk_count, indexed_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY indexed_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*voxdoc.Document
	for rows.Next() {
		var doc voxdoc.Document
		var indexedAt string

		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Kind, &doc.Source, &doc.Title,
			&doc.Content, &doc.ContentHash, &doc.ChunkCount, &indexedAt); err != nil {
			return nil, err
		}

		doc.IndexedAt, err = time.Parse(time.RFC3339, indexedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse indexed_at: %w", err)
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd voxdoc.DocumentUpdate) (*voxdoc.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.Content != nil {
		doc.Content = *upd.Content
		doc.ContentHash = voxdoc.HashContent(doc.Content)
	}
	if upd.ContentHash != nil {
		doc.ContentHash = *upd.ContentHash
	}
	if upd.ChunkCount != nil {
		doc.ChunkCount = *upd.ChunkCount
	}
	doc.IndexedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, content = ?, content_hash = ?, chunk_count = ?, indexed_at = ?
		WHERE id = ?
	`, doc.Title, doc.Content, doc.ContentHash, doc.ChunkCount,
		doc.IndexedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return voxdoc.Errorf(voxdoc.ENOTFOUND, "document not found")
	}

	return nil
}
