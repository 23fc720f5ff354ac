package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/indexer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Indexer       *indexer.Indexer
	NewPageLoader func(dir string) docindex.PageLoader
	WriteStore    func(path string, store docindex.Store) error
	LoadPlaybook  func(path string) (*docindex.Playbook, error)

	// Documents is set only when the command was given a database.
	Documents docindex.DocumentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose       bool `short:"v" help:"Log every extraction and search"`
	DirectoryURLs bool `name:"directory-urls" help:"Publish index.html pages under their directory URL"`

	Build  BuildCmd  `cmd:"" help:"Build the search index of a site directory"`
	Search SearchCmd `cmd:"" help:"Search a site directory"`
	Docs   DocsCmd   `cmd:"" help:"List documents exported to a database"`
}

// SiteFlags selects the playbook applied to a site directory.
type SiteFlags struct {
	Playbook string `short:"p" type:"existingfile" help:"Playbook file providing site.url"`
	SiteURL  string `name:"site-url" help:"Base URL of the published site (overrides the playbook)"`
}

// playbook loads the configured playbook and applies the --site-url override.
func (f SiteFlags) playbook(deps *Dependencies) (*docindex.Playbook, error) {
	playbook := &docindex.Playbook{}
	if f.Playbook != "" {
		var err error
		if playbook, err = deps.LoadPlaybook(f.Playbook); err != nil {
			return nil, err
		}
	}
	if f.SiteURL != "" {
		playbook.Site.URL = f.SiteURL
	}
	return playbook, nil
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Dir string `arg:"" type:"existingdir" help:"Generated site directory"`
	SiteFlags
	Output      string `short:"o" help:"Write the document store as JSON to this file"`
	DB          string `help:"Export the built documents to this SQLite database"`
	Concurrency int    `short:"c" default:"4" help:"Pages extracted in parallel"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Dir   string `arg:"" type:"existingdir" help:"Generated site directory"`
	Query string `arg:"" help:"Search query (terms, prefix*, field:term)"`
	SiteFlags
	Limit       int `short:"n" default:"10" help:"Maximum number of hits shown (0 for all)"`
	Concurrency int `short:"c" default:"4" help:"Pages extracted in parallel"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	DB        string `required:"" help:"SQLite database written by 'docindex build --db'"`
	Component string `help:"Only documents of this component"`
	Version   string `help:"Only documents of this version"`
	Limit     int    `short:"n" help:"Maximum number of documents shown"`
	Offset    int    `help:"Number of documents skipped"`
}
