package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	site, err := generate(deps, c.Dir, c.SiteFlags)
	if err != nil {
		return err
	}
	defer site.Close()

	hits, err := site.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if len(hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q\n", c.Query)
		return nil
	}

	total := len(hits)
	if c.Limit > 0 && len(hits) > c.Limit {
		hits = hits[:c.Limit]
	}

	fmt.Fprintln(deps.Stdout, docindex.FormatHits(hits, site.Store))
	if len(hits) < total {
		fmt.Fprintf(deps.Stdout, "\nShowing %d of %d results\n", len(hits), total)
	}
	return nil
}
