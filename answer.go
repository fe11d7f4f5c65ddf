package voxdoc

import "context"

// Mode selects how answers are generated.
type Mode string

// Answer generation modes.
const (
	// ModeQA answers strictly from the retrieved context.
	ModeQA Mode = "qa"

	// ModeNotes produces structured markdown notes from the retrieved
	// context and the user's request.
	ModeNotes Mode = "notes"
)

// Validate returns an error if the mode is not recognized.
func (m Mode) Validate() error {
	switch m {
	case ModeQA, ModeNotes:
		return nil
	}
	return Errorf(EINVALID, "invalid mode %q", string(m))
}

// Generator produces text from a prompt using a language model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Answer is the result of answering a question.
type Answer struct {
	// Text is the generated answer or note.
	Text string `json:"text"`

	// Sources lists the documents or URLs the context came from.
	Sources []string `json:"sources,omitempty"`

	// Found reports whether retrieval produced any context. When false,
	// Text contains a fixed fallback message.
	Found bool `json:"found"`
}

// Answerer answers natural language questions over indexed documents.
type Answerer interface {
	Answer(ctx context.Context, question string, mode Mode) (*Answer, error)
}
