package main

import (
	"fmt"

	"github.com/pwielgus/voxdoc"
)

// Run executes the notes list command.
func (c *NotesListCmd) Run(deps *Dependencies) error {
	notes, err := deps.Notes.ListNotes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(deps.Stdout, "No notes saved. Use 'voxdoc ask --notes --save' to create one.")
		return nil
	}

	for _, n := range notes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Name, n.Title)
	}

	return nil
}

// Run executes the notes show command.
func (c *NotesShowCmd) Run(deps *Dependencies) error {
	note, err := deps.Notes.ReadNote(deps.Ctx, c.Name)
	if err != nil {
		if voxdoc.ErrorCode(err) == voxdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: note %q not found. Use 'voxdoc notes list' to see saved notes.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n", note.Title, note.Content)
	return nil
}

// Run executes the notes export command.
func (c *NotesExportCmd) Run(deps *Dependencies) error {
	note, err := deps.Notes.ReadNote(deps.Ctx, c.Name)
	if err != nil {
		if voxdoc.ErrorCode(err) == voxdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: note %q not found. Use 'voxdoc notes list' to see saved notes.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		}
		return err
	}

	output := c.Output
	if output == "" {
		output = note.Name + ".docx"
	}

	if err := deps.Exporter.Export(deps.Ctx, note, output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %q to %s\n", note.Name, output)
	return nil
}
