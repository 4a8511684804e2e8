package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/palet"
	"github.com/fwojciec/palet/sh"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	apps, err := deps.catalog()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", palet.ErrorMessage(err))
		return err
	}

	query := strings.Join(c.Text, " ")

	// Keep the store in step with the catalog. Failures only cost search.
	if deps.Indexer != nil && strings.TrimSpace(query) != "" {
		var commands palet.CustomCommands
		if deps.Config != nil {
			commands = deps.Config.CustomCommands
		}
		if _, err := deps.Indexer.Index(deps.Ctx, apps, commands); err != nil && deps.Logger != nil {
			deps.Logger.Warn("catalog index failed", "err", err)
		}
	}

	results := deps.Resolver.Resolve(query, apps)
	if err := deps.Renderer.RenderResults(results); err != nil {
		return err
	}

	if !c.Actions {
		return nil
	}

	fmt.Fprintln(deps.Stdout)
	for _, r := range results {
		argv, err := deps.Actions.Argv(r.Action())
		if err != nil {
			fmt.Fprintf(deps.Stdout, "%s: error: %s\n", r.DisplayName(), palet.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %s\n", r.DisplayName(), sh.Join(argv))
	}
	return nil
}
