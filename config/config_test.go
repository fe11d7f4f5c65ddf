package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:11434", cfg.Ollama.URL)
		assert.Equal(t, "all-minilm", cfg.Ollama.EmbedModel)
		assert.Equal(t, "gemma3:1b", cfg.Ollama.GenerateModel)
		assert.Equal(t, voxdoc.DefaultChunkSize, cfg.Chunk.Size)
		assert.Equal(t, 3, cfg.Search.TopK)
		assert.Equal(t, voxdoc.DefaultSampleRate, cfg.Speech.SampleRate)
		assert.Equal(t, voxdoc.DefaultChannels, cfg.Speech.Channels)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
data_dir: /data/voxdoc
ollama:
  url: http://remote:11434
  generate_model: llama3
search:
  top_k: 5
  min_score: 0.4
speech:
  channels: 2
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "/data/voxdoc", cfg.DataDir)
		assert.Equal(t, "http://remote:11434", cfg.Ollama.URL)
		assert.Equal(t, "llama3", cfg.Ollama.GenerateModel)
		assert.Equal(t, 5, cfg.Search.TopK)
		assert.InDelta(t, 0.4, cfg.Search.MinScore, 0.0001)
		assert.Equal(t, 2, cfg.Speech.Channels)
		// Untouched sections keep their defaults.
		assert.Equal(t, "all-minilm", cfg.Ollama.EmbedModel)
		assert.Equal(t, voxdoc.DefaultSampleRate, cfg.Speech.SampleRate)
	})

	t.Run("invalid YAML returns EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ollama: [not a map"), 0o644))

		_, err := config.Load(path)

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(err))
	})

	t.Run("derived paths live under the data dir", func(t *testing.T) {
		t.Parallel()

		cfg := config.Default()
		cfg.DataDir = "/data/voxdoc"

		assert.Equal(t, "/data/voxdoc/voxdoc.db", cfg.DatabasePath())
		assert.Equal(t, "/data/voxdoc/index", cfg.IndexPath())
		assert.Equal(t, "/data/voxdoc/notes", cfg.NotesDir())
	})
}
