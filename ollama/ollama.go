// Package ollama provides embedding and text generation backed by a
// locally hosted Ollama server.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
	"github.com/pwielgus/voxdoc"
)

// DefaultURL is the Ollama server address used when none is configured.
const DefaultURL = "http://localhost:11434"

// Default models. The embedding model mirrors the sentence-transformers
// all-MiniLM-L6-v2 family.
const (
	DefaultEmbedModel    = "all-minilm"
	DefaultGenerateModel = "gemma3:1b"
)

// Client wraps the Ollama API client.
type Client struct {
	api *api.Client
}

// NewClient creates a Client for the Ollama server at rawURL.
// An empty rawURL uses DefaultURL.
func NewClient(rawURL string) (*Client, error) {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "invalid ollama URL %q", rawURL)
	}
	return &Client{api: api.NewClient(u, http.DefaultClient)}, nil
}

// Ping reports whether the Ollama server is reachable.
// Returns EUNAVAILABLE when it is not.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.List(ctx); err != nil {
		return voxdoc.Errorf(voxdoc.EUNAVAILABLE, "ollama not reachable: %v (start it with: ollama serve)", err)
	}
	return nil
}

// Ensure implementations satisfy domain interfaces at compile time.
var (
	_ voxdoc.Embedder  = (*Embedder)(nil)
	_ voxdoc.Generator = (*Generator)(nil)
)

// Embedder implements voxdoc.Embedder using an Ollama embedding model.
type Embedder struct {
	client *Client
	model  string
}

// NewEmbedder creates an Embedder. An empty model uses DefaultEmbedModel.
func NewEmbedder(client *Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbedModel
	}
	return &Embedder{client: client, model: model}
}

// Embed converts text into an embedding vector.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "text to embed required")
	}

	resp, err := e.client.api.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embed failed: %w", err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, voxdoc.Errorf(voxdoc.EINTERNAL, "ollama returned no embedding")
	}

	return resp.Embeddings[0], nil
}

// Generator implements voxdoc.Generator using an Ollama chat model.
type Generator struct {
	client      *Client
	model       string
	temperature float32
}

// NewGenerator creates a Generator. An empty model uses
// DefaultGenerateModel.
func NewGenerator(client *Client, model string) *Generator {
	if model == "" {
		model = DefaultGenerateModel
	}
	return &Generator{client: client, model: model, temperature: 0.4}
}

// Generate produces text from a prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", voxdoc.Errorf(voxdoc.EINVALID, "prompt required")
	}

	stream := false
	var out string
	err := g.client.api.Generate(ctx, &api.GenerateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": g.temperature,
		},
	}, func(resp api.GenerateResponse) error {
		out += resp.Response
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}

	return out, nil
}
