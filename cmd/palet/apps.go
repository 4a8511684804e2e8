package main

import (
	"fmt"

	"github.com/fwojciec/palet"
)

// Run executes the apps command.
func (c *AppsCmd) Run(deps *Dependencies) error {
	apps, err := deps.catalog()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", palet.ErrorMessage(err))
		return err
	}

	if len(apps) == 0 {
		fmt.Fprintln(deps.Stdout, "No applications found. Use --extra-path to scan more directories.")
		return nil
	}

	return deps.Renderer.RenderApplications(apps)
}
