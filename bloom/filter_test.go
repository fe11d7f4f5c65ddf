package bloom_test

import (
	"fmt"
	"testing"

	"github.com/pwielgus/voxdoc/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("deadbeef"))

	f.Add("deadbeef")

	assert.True(t, f.Test("deadbeef"))
	assert.False(t, f.Test("cafebabe"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.001)
	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("hash-%d", i))
	}

	count := f.EstimatedCount()
	assert.InDelta(t, 100, int(count), 10)
}
