package main

import (
	"fmt"

	"github.com/fwojciec/palet"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, c.Substring)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", palet.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'palet index' to populate the store.")
		return nil
	}

	return deps.Renderer.RenderEntries(entries)
}
