// Package tiktoken provides offline token counting using the cl100k_base
// encoding.
package tiktoken

import (
	"context"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	"github.com/pwielgus/voxdoc"
)

// encodingName is a reasonable proxy for the tokenizers used by local
// models; exact counts are not required, only stable budgeting.
const encodingName = "cl100k_base"

// Ensure Counter implements voxdoc.TokenCounter at compile time.
var _ voxdoc.TokenCounter = (*Counter)(nil)

// Counter counts tokens without network access.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter creates a Counter.
func NewCounter() (*Counter, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s encoding: %w", encodingName, err)
	}
	return &Counter{enc: enc}, nil
}

// CountTokens returns the number of tokens in text.
func (c *Counter) CountTokens(_ context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	return len(c.enc.Encode(text, nil, nil)), nil
}
