package voxdoc_test

import (
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/stretchr/testify/assert"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &voxdoc.Document{Name: "paper", Kind: voxdoc.DocumentKindFile, Source: "/docs/paper.txt"}
		assert.NoError(t, doc.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		doc := &voxdoc.Document{Kind: voxdoc.DocumentKindFile, Source: "/docs/paper.txt"}
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(doc.Validate()))
	})

	t.Run("invalid kind", func(t *testing.T) {
		t.Parallel()

		doc := &voxdoc.Document{Name: "paper", Kind: "carving", Source: "/docs/paper.txt"}
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(doc.Validate()))
	})
}

func TestHashContent_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, voxdoc.HashContent("abc"), voxdoc.HashContent("abc"))
	assert.NotEqual(t, voxdoc.HashContent("abc"), voxdoc.HashContent("abd"))
	assert.Len(t, voxdoc.HashContent("abc"), 16)
}
