package main

import (
	"fmt"

	"github.com/fwojciec/palet"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	apps, err := deps.catalog()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", palet.ErrorMessage(err))
		return err
	}

	commands := deps.Config.CustomCommands
	changed, err := deps.Indexer.Index(deps.Ctx, apps, commands)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", palet.ErrorMessage(err))
		return err
	}

	if !changed {
		fmt.Fprintln(deps.Stdout, "Entry store is up to date.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d applications and %d custom commands.\n", len(apps), len(commands))
	return nil
}
