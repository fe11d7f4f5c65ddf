package voxdoc

import (
	"context"
	"time"
)

// Note represents a saved markdown note generated in notes mode.
type Note struct {
	// Title of the note. Defaults to "Untitled Note" when empty.
	Title string `json:"title"`

	// Name is the note's filename without extension, unique within
	// the notes directory.
	Name string `json:"name"`

	// Path is the absolute location of the note file.
	Path string `json:"path"`

	// Content is the note body, markdown without the front matter.
	Content string `json:"content"`

	CreatedAt time.Time `json:"createdAt"`
}

// NoteService represents a service for saving and reading notes.
type NoteService interface {
	// SaveNote writes a note to storage and returns it. An empty title
	// produces a timestamped name.
	SaveNote(ctx context.Context, content, title string) (*Note, error)

	// ListNotes returns all notes, newest first.
	ListNotes(ctx context.Context) ([]*Note, error)

	// ReadNote retrieves a note by name.
	// Returns ENOTFOUND if the note does not exist.
	ReadNote(ctx context.Context, name string) (*Note, error)
}

// NoteExporter writes a note to an external document format.
type NoteExporter interface {
	// Export writes the note to path. The format depends on the
	// implementation (e.g., .docx).
	Export(ctx context.Context, note *Note, path string) error
}
