package voxdoc

import "context"

// Embedder converts text into a vector representation for similarity
// search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
