package trafilatura_test

import (
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Why The Sky Is Blue</title>
<meta name="description" content="A short explanation of Rayleigh scattering.">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Why The Sky Is Blue</h1>
<p>Sunlight scatters off air molecules, and blue light scatters the most.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "blue light scatters the most")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav"><ul><li><a href="/">Home</a></li><li><a href="/about">About</a></li></ul></nav>
<article>
<h1>Article</h1>
<p>This is the article body that matters for answering questions.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "article body that matters")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(err))
	})
}
