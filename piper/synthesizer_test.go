package piper_test

import (
	"context"
	"testing"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/piper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizer_Args(t *testing.T) {
	t.Parallel()

	t.Run("builds model and output arguments", func(t *testing.T) {
		t.Parallel()

		s := piper.NewSynthesizer("/voices/en_US-amy-medium.onnx")

		args := s.Args("/tmp/out.wav")

		assert.Equal(t, []string{
			"--model", "/voices/en_US-amy-medium.onnx",
			"--output_file", "/tmp/out.wav",
		}, args)
	})

	t.Run("includes length scale when set", func(t *testing.T) {
		t.Parallel()

		s := piper.NewSynthesizer("/voices/amy.onnx", piper.WithLengthScale(0.9))

		args := s.Args("/tmp/out.wav")

		assert.Contains(t, args, "--length_scale")
		assert.Contains(t, args, "0.9")
	})
}

func TestSynthesizer_Synthesize(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		s := piper.NewSynthesizer("/voices/amy.onnx")

		_, err := s.Synthesize(context.Background(), "   ")

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(err))
	})

	t.Run("rejects missing model path", func(t *testing.T) {
		t.Parallel()

		s := piper.NewSynthesizer("")

		_, err := s.Synthesize(context.Background(), "hello")

		require.Error(t, err)
		assert.Equal(t, voxdoc.EINVALID, voxdoc.ErrorCode(err))
	})

	t.Run("missing binary reports an error", func(t *testing.T) {
		t.Parallel()

		s := piper.NewSynthesizer("/voices/amy.onnx", piper.WithBinary("/nonexistent/piper-binary"))

		_, err := s.Synthesize(context.Background(), "hello")

		require.Error(t, err)
	})
}
