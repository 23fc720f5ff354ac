package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docindex"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if deps.Documents == nil {
		return docindex.Errorf(docindex.EINVALID, "no database configured")
	}

	build, err := deps.Documents.FindLatestBuild(deps.Ctx)
	if docindex.ErrorCode(err) == docindex.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s has no exported documents. Run 'docindex build <dir> --db %s' first.\n", c.DB, c.DB)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	filter := docindex.DocumentFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Component != "" {
		filter.Component = &c.Component
	}
	if c.Version != "" {
		filter.Version = &c.Version
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Build %s, %d documents, created %s\n\n",
		build.ID, build.DocumentCount, build.CreatedAt.Format(time.RFC3339))

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching documents")
		return nil
	}
	fmt.Fprintln(deps.Stdout, docindex.FormatDocuments(docs))
	return nil
}
