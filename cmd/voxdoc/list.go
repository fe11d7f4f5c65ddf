package main

import (
	"fmt"

	"github.com/pwielgus/voxdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, voxdoc.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents indexed. Use 'voxdoc add' or 'voxdoc fetch' to index one.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %-4s  %4d chunks  %s  %s\n",
			d.IndexedAt.Format("2006-01-02"), d.Kind, d.ChunkCount, d.Name, d.Source)
	}

	return nil
}
