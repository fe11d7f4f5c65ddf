package tiktoken_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pwielgus/voxdoc/tiktoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_CountTokens(t *testing.T) {
	t.Parallel()

	counter, err := tiktoken.NewCounter()
	if err != nil {
		// The encoding is fetched and cached on first use.
		t.Skipf("cl100k_base encoding unavailable: %v", err)
	}
	ctx := context.Background()

	t.Run("empty text counts zero", func(t *testing.T) {
		t.Parallel()

		n, err := counter.CountTokens(ctx, "")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("longer text counts more tokens", func(t *testing.T) {
		t.Parallel()

		short, err := counter.CountTokens(ctx, "hello")
		require.NoError(t, err)
		long, err := counter.CountTokens(ctx, strings.Repeat("hello world ", 50))
		require.NoError(t, err)

		assert.Positive(t, short)
		assert.Greater(t, long, short)
	})
}
