package main

import (
	"fmt"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/ingest"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	progress := func(event ingest.ProgressEvent) {
		fmt.Fprintf(deps.Stdout, "\r  Embedding chunks %d/%d", event.Completed, event.Total)
		if event.Completed == event.Total {
			fmt.Fprintln(deps.Stdout)
		}
	}

	result, err := deps.Indexer.IndexFile(deps.Ctx, c.Path, c.Name, c.Force, progress)
	if err != nil {
		if voxdoc.ErrorCode(err) == voxdoc.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "error: %s. Use --force to re-index.\n", voxdoc.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %q (%d chunks", result.Document.Name, result.Chunks)
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, ", %d duplicates skipped", result.Skipped)
	}
	fmt.Fprintln(deps.Stdout, ")")

	return nil
}
