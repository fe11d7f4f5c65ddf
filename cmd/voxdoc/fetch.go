package main

import (
	"fmt"

	"github.com/pwielgus/voxdoc"
	"github.com/pwielgus/voxdoc/ingest"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching %s\n", c.URL)

	page, err := deps.Browser.Browse(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		return err
	}

	progress := func(event ingest.ProgressEvent) {
		fmt.Fprintf(deps.Stdout, "\r  Embedding chunks %d/%d", event.Completed, event.Total)
		if event.Completed == event.Total {
			fmt.Fprintln(deps.Stdout)
		}
	}

	result, err := deps.Indexer.IndexPage(deps.Ctx, page, c.Name, c.Force, progress)
	if err != nil {
		if voxdoc.ErrorCode(err) == voxdoc.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "error: %s. Use --force to re-index.\n", voxdoc.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %q (%d chunks)\n", result.Document.Name, result.Chunks)
	return nil
}
