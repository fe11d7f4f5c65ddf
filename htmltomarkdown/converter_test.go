package htmltomarkdown_test

import (
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<h2>Overview</h2><p>Plain <strong>bold</strong> text.</p>")

		require.NoError(t, err)
		assert.Contains(t, md, "## Overview")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("converts code blocks", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code>fmt.Println("hi")</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, `fmt.Println("hi")`)
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<table><tr><th>Name</th></tr><tr><td>llama</td></tr></table>")

		require.NoError(t, err)
		assert.Contains(t, md, "| Name |")
		assert.Contains(t, md, "| llama |")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(err))
	})
}
