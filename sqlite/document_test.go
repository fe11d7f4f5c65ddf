package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDocument(t *testing.T, svc *sqlite.DocumentService, name string) *voxdoc.Document {
	t.Helper()

	doc := &voxdoc.Document{
		Name:    name,
		Kind:    voxdoc.DocumentKindFile,
		Source:  "/docs/" + name + ".md",
		Title:   "Title of " + name,
		Content: "# " + name + "\n\nSome content here.",
	}
	require.NoError(t, svc.CreateDocument(context.Background(), doc))
	return doc
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		doc := createTestDocument(t, svc, "manual")

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.False(t, doc.IndexedAt.IsZero(), "IndexedAt should be set")
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.CreateDocument(context.Background(), &voxdoc.Document{})

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(err))
	})

	t.Run("returns conflict for duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		createTestDocument(t, svc, "manual")

		err := svc.CreateDocument(context.Background(), &voxdoc.Document{
			Name:   "manual",
			Kind:   voxdoc.DocumentKindFile,
			Source: "/other/manual.md",
		})

		require.Error(t, err)
		assert.Equal(t, voxdoc.ECONFLICT, voxdoc.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentByName(t *testing.T) {
	t.Parallel()

	t.Run("finds existing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		created := createTestDocument(t, svc, "manual")

		found, err := svc.FindDocumentByName(context.Background(), "manual")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Content, found.Content)
		assert.Equal(t, created.ContentHash, found.ContentHash)
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		_, err := svc.FindDocumentByName(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, voxdoc.ENOTFOUND, voxdoc.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		createTestDocument(t, svc, "file-doc")
		web := &voxdoc.Document{
			Name:   "web-doc",
			Kind:   voxdoc.DocumentKindWeb,
			Source: "https://example.com/page",
		}
		require.NoError(t, svc.CreateDocument(ctx, web))

		kind := voxdoc.DocumentKindWeb
		docs, err := svc.FindDocuments(ctx, voxdoc.DocumentFilter{Kind: &kind})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "web-doc", docs[0].Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		for i := 0; i < 5; i++ {
			createTestDocument(t, svc, fmt.Sprintf("doc-%d", i))
		}

		docs, err := svc.FindDocuments(context.Background(), voxdoc.DocumentFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})
}

func TestDocumentService_UpdateDocument(t *testing.T) {
	t.Parallel()

	t.Run("updates content and rehashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		doc := createTestDocument(t, svc, "manual")
		oldHash := doc.ContentHash

		newContent := "completely new content"
		count := 7
		updated, err := svc.UpdateDocument(context.Background(), doc.ID, voxdoc.DocumentUpdate{
			Content:    &newContent,
			ChunkCount: &count,
		})

		require.NoError(t, err)
		assert.Equal(t, newContent, updated.Content)
		assert.Equal(t, 7, updated.ChunkCount)
		assert.NotEqual(t, oldHash, updated.ContentHash)
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		title := "nope"
		_, err := svc.UpdateDocument(context.Background(), "missing-id", voxdoc.DocumentUpdate{Title: &title})

		require.Error(t, err)
		assert.Equal(t, voxdoc.ENOTFOUND, voxdoc.ErrorCode(err))
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		doc := createTestDocument(t, svc, "manual")

		require.NoError(t, svc.DeleteDocument(context.Background(), doc.ID))

		_, err := svc.FindDocumentByID(context.Background(), doc.ID)
		assert.Equal(t, voxdoc.ENOTFOUND, voxdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.DeleteDocument(context.Background(), "missing-id")

		require.Error(t, err)
		assert.Equal(t, voxdoc.ENOTFOUND, voxdoc.ErrorCode(err))
	})
}
