// Package gemini provides a cloud-hosted alternative text generator using
// Google Gemini, for setups without a local Ollama install.
package gemini

import (
	"context"

	"github.com/pwielgus/voxdoc"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements voxdoc.Generator at compile time.
var _ voxdoc.Generator = (*Generator)(nil)

// Generator implements voxdoc.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model uses DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate produces text from a prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", voxdoc.Errorf(voxdoc.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		buildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", voxdoc.Errorf(voxdoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
