package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/palet"
	"github.com/fwojciec/palet/lipgloss"
	"github.com/fwojciec/palet/sh"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *palet.Config
	Dirs     []string
	Scanner  palet.Scanner
	Resolver palet.Resolver
	Entries  palet.EntryService
	Indexer  palet.Indexer
	Renderer *lipgloss.Renderer
	Actions  *sh.Builder
}

// catalog scans the configured directories, dropping duplicates when the
// config asks for it.
func (d *Dependencies) catalog() ([]*palet.Application, error) {
	apps, err := d.Scanner.Scan(d.Ctx, d.Dirs)
	if err != nil {
		return nil, err
	}
	if d.Config != nil && d.Config.Dedupe {
		apps = palet.DedupeApplications(apps)
	}
	return apps, nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string   `short:"c" env:"PALET_CONFIG" help:"Config file path"`
	DB        string   `name:"db" env:"PALET_DB" help:"Entry store path"`
	ExtraPath []string `name:"extra-path" help:"Additional application directory (repeatable)"`
	Verbose   bool     `short:"v" help:"Enable debug logging"`

	Query  QueryCmd  `cmd:"" help:"Resolve a query into results"`
	Apps   AppsCmd   `cmd:"" help:"List installed applications"`
	Index  IndexCmd  `cmd:"" help:"Index applications and custom commands into the entry store"`
	Search SearchCmd `cmd:"" help:"Search the entry store"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Text    []string `arg:"" optional:"" passthrough:"" help:"Query text"`
	Actions bool     `short:"a" help:"Print the command line each result would run"`
}

// AppsCmd is the "apps" subcommand.
type AppsCmd struct{}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Substring string `arg:"" optional:"" help:"Text to look for in entry names and descriptions"`
}
