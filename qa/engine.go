// Package qa provides question answering orchestration over indexed
// documents: retrieval, context assembly, prompt construction and
// generation, with an optional web page fallback.
package qa

import (
	"context"
	"strings"

	"github.com/pwielgus/voxdoc"
)

// NotFoundAnswer is returned when retrieval produces no context and no
// fallback source is configured.
const NotFoundAnswer = "I couldn't find relevant information in the document."

// Defaults for retrieval and context assembly.
const (
	DefaultTopK          = 3
	DefaultContextTokens = 2000
)

// PageBrowser fetches and extracts a web page. Satisfied by
// browse.Browser.
type PageBrowser interface {
	Browse(ctx context.Context, url string) (*voxdoc.WebPage, error)
}

// Ensure Engine implements voxdoc.Answerer at compile time.
var _ voxdoc.Answerer = (*Engine)(nil)

// Engine answers questions over the vector index.
type Engine struct {
	Index        voxdoc.Index
	Generator    voxdoc.Generator
	TokenCounter voxdoc.TokenCounter

	// Browser and FallbackURL enable the secondary web source used when
	// local retrieval returns nothing. Both must be set.
	Browser     PageBrowser
	FallbackURL string

	// TopK is the number of chunks retrieved. Defaults to DefaultTopK.
	TopK int

	// MinScore drops weak matches (0-1).
	MinScore float32

	// ContextTokens bounds the assembled context. Defaults to
	// DefaultContextTokens. Ignored when TokenCounter is nil.
	ContextTokens int
}

// Answer answers a natural language question.
func (e *Engine) Answer(ctx context.Context, question string, mode voxdoc.Mode) (*voxdoc.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, voxdoc.Errorf(voxdoc.EINVALID, "question required")
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	topK := e.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	results, err := e.Index.Search(ctx, question, voxdoc.SearchOptions{
		Limit:    topK,
		MinScore: e.MinScore,
	})
	if err != nil {
		return nil, err
	}

	var contextText string
	var sources []string

	switch {
	case len(results) > 0:
		contextText, sources, err = e.assembleContext(ctx, results)
		if err != nil {
			return nil, err
		}
	case e.Browser != nil && e.FallbackURL != "":
		page, err := e.Browser.Browse(ctx, e.FallbackURL)
		if err != nil {
			return nil, err
		}
		contextText, err = e.truncate(ctx, page.Content)
		if err != nil {
			return nil, err
		}
		sources = []string{page.URL}
	default:
		return &voxdoc.Answer{Text: NotFoundAnswer, Found: false}, nil
	}

	text, err := e.Generator.Generate(ctx, BuildPrompt(contextText, question, mode))
	if err != nil {
		return nil, err
	}

	return &voxdoc.Answer{
		Text:    strings.TrimSpace(text),
		Sources: sources,
		Found:   true,
	}, nil
}

// assembleContext joins retrieved chunks, highest score first, within the
// token budget. The first chunk is always included.
func (e *Engine) assembleContext(ctx context.Context, results []voxdoc.SearchResult) (string, []string, error) {
	budget := e.ContextTokens
	if budget <= 0 {
		budget = DefaultContextTokens
	}

	var parts []string
	var sources []string
	seen := make(map[string]bool)
	used := 0

	for _, res := range results {
		tokens := 0
		if e.TokenCounter != nil {
			var err error
			tokens, err = e.TokenCounter.CountTokens(ctx, res.Chunk.Content)
			if err != nil {
				return "", nil, err
			}
		}
		if len(parts) > 0 && used+tokens > budget {
			break
		}
		used += tokens
		parts = append(parts, res.Chunk.Content)

		source := res.Chunk.Metadata.DocumentName
		if source == "" {
			source = res.Chunk.Metadata.Source
		}
		if source != "" && !seen[source] {
			seen[source] = true
			sources = append(sources, source)
		}
	}

	return strings.Join(parts, "\n\n"), sources, nil
}

// truncate bounds fallback page content to the token budget by dropping
// trailing chunks.
func (e *Engine) truncate(ctx context.Context, content string) (string, error) {
	if e.TokenCounter == nil {
		return content, nil
	}

	budget := e.ContextTokens
	if budget <= 0 {
		budget = DefaultContextTokens
	}

	total, err := e.TokenCounter.CountTokens(ctx, content)
	if err != nil {
		return "", err
	}
	if total <= budget {
		return content, nil
	}

	var parts []string
	used := 0
	for _, chunk := range voxdoc.ChunkText(content, voxdoc.DefaultChunkSize, 0) {
		tokens, err := e.TokenCounter.CountTokens(ctx, chunk)
		if err != nil {
			return "", err
		}
		if len(parts) > 0 && used+tokens > budget {
			break
		}
		used += tokens
		parts = append(parts, chunk)
	}

	return strings.Join(parts, "\n\n"), nil
}
