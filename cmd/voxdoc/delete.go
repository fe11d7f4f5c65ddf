package main

import (
	"fmt"

	"github.com/pwielgus/voxdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return voxdoc.Errorf(voxdoc.EINVALID, "use --force to confirm deletion")
	}

	doc, err := deps.Documents.FindDocumentByName(deps.Ctx, c.Name)
	if err != nil {
		if voxdoc.ErrorCode(err) == voxdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'voxdoc list' to see indexed documents.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Index.DeleteDocument(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		return err
	}
	if err := deps.Documents.DeleteDocument(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q (%d chunks)\n", doc.Name, doc.ChunkCount)
	return nil
}
