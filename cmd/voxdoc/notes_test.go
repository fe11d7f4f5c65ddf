package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pwielgus/voxdoc"
	main "github.com/pwielgus/voxdoc/cmd/voxdoc"
	"github.com/pwielgus/voxdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists notes with names and titles", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Notes = &mock.NoteService{
			ListNotesFn: func(context.Context) ([]*voxdoc.Note, error) {
				return []*voxdoc.Note{
					{Name: "chapter-one", Title: "Chapter One", CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		err := (&main.NotesListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "chapter-one")
		assert.Contains(t, stdout.String(), "Chapter One")
	})

	t.Run("shows helpful message when no notes exist", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Notes = &mock.NoteService{
			ListNotesFn: func(context.Context) ([]*voxdoc.Note, error) {
				return nil, nil
			},
		}

		err := (&main.NotesListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No notes")
	})
}

func TestNotesShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints note title and content", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Notes = &mock.NoteService{
			ReadNoteFn: func(_ context.Context, name string) (*voxdoc.Note, error) {
				assert.Equal(t, "chapter-one", name)
				return &voxdoc.Note{Name: name, Title: "Chapter One", Content: "- a point"}, nil
			},
		}

		err := (&main.NotesShowCmd{Name: "chapter-one"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Chapter One")
		assert.Contains(t, stdout.String(), "- a point")
	})

	t.Run("reports unknown note", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Notes = &mock.NoteService{
			ReadNoteFn: func(_ context.Context, name string) (*voxdoc.Note, error) {
				return nil, voxdoc.Errorf(voxdoc.ENOTFOUND, "note %q does not exist", name)
			},
		}

		err := (&main.NotesShowCmd{Name: "ghost"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}

func TestNotesExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("exports with default output path", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Notes = &mock.NoteService{
			ReadNoteFn: func(_ context.Context, name string) (*voxdoc.Note, error) {
				return &voxdoc.Note{Name: name, Title: "Chapter One", Content: "- a point"}, nil
			},
		}

		var exportedPath string
		deps.Exporter = &mock.NoteExporter{
			ExportFn: func(_ context.Context, note *voxdoc.Note, path string) error {
				exportedPath = path
				assert.Equal(t, "chapter-one", note.Name)
				return nil
			},
		}

		err := (&main.NotesExportCmd{Name: "chapter-one"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "chapter-one.docx", exportedPath)
		assert.Contains(t, stdout.String(), "Exported")
	})

	t.Run("honors explicit output path", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Notes = &mock.NoteService{
			ReadNoteFn: func(_ context.Context, name string) (*voxdoc.Note, error) {
				return &voxdoc.Note{Name: name, Content: "x"}, nil
			},
		}

		var exportedPath string
		deps.Exporter = &mock.NoteExporter{
			ExportFn: func(_ context.Context, _ *voxdoc.Note, path string) error {
				exportedPath = path
				return nil
			},
		}

		err := (&main.NotesExportCmd{Name: "n", Output: "/tmp/out.docx"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/out.docx", exportedPath)
	})
}
