package voxdoc

import "context"

// TokenCounter counts tokens in text for context budgeting.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
