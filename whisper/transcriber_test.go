package whisper_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/whisper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)
	return server
}

func TestTranscriber_Transcribe(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 1600)
	for i := range samples {
		samples[i] = 0.1
	}

	t.Run("posts WAV audio and returns text", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/inference", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()

			assert.Equal(t, "audio.wav", header.Filename)
			head := make([]byte, 4)
			_, err = file.Read(head)
			require.NoError(t, err)
			assert.Equal(t, "RIFF", string(head))

			_ = json.NewEncoder(w).Encode(map[string]string{"text": "  hello world \n"})
		})

		tr := whisper.NewTranscriber(server.URL)
		text, err := tr.Transcribe(context.Background(), samples, voxdoc.DefaultSampleRate)

		require.NoError(t, err)
		assert.Equal(t, "hello world", text)
	})

	t.Run("rejects empty audio", func(t *testing.T) {
		t.Parallel()

		tr := whisper.NewTranscriber("http://localhost:8080")
		_, err := tr.Transcribe(context.Background(), nil, voxdoc.DefaultSampleRate)

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(err))
	})

	t.Run("unreachable server returns EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		tr := whisper.NewTranscriber("http://127.0.0.1:1")
		_, err := tr.Transcribe(context.Background(), samples, voxdoc.DefaultSampleRate)

		require.Error(t, err)
		assert.Equal(t, voxdoc.EUNAVAILABLE, voxdoc.ErrorCode(err))
		assert.Contains(t, voxdoc.ErrorMessage(err), "whisper server")
	})

	t.Run("server errors become EINTERNAL", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		tr := whisper.NewTranscriber(server.URL)
		_, err := tr.Transcribe(context.Background(), samples, voxdoc.DefaultSampleRate)

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINTERNAL, voxdoc.ErrorCode(err))
	})

	t.Run("reported transcription errors surface", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "failed to process audio"})
		})

		tr := whisper.NewTranscriber(server.URL)
		_, err := tr.Transcribe(context.Background(), samples, voxdoc.DefaultSampleRate)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to process audio")
	})
}
