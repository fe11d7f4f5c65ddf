package pdf_test

import (
	"path/filepath"
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing files", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewLoader().Load(filepath.Join(t.TempDir(), "missing.pdf"))

		require.Error(t, err)
		assert.Equal(t, voxdoc.ENOTFOUND, voxdoc.ErrorCode(err))
	})
}
