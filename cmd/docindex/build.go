package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	site, err := generate(deps, c.Dir, c.SiteFlags)
	if err != nil {
		return err
	}
	defer site.Close()

	entries, err := site.Index.Count()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Indexed %d pages (%d search entries) from %s\n", len(site.Store), entries, c.Dir)

	if c.Output != "" {
		if err := deps.WriteStore(c.Output, site.Store); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote document store to %s\n", c.Output)
	}

	if deps.Documents == nil {
		return nil
	}

	build, err := deps.Documents.ReplaceDocuments(deps.Ctx, site.Store.Documents())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported build %s (%d documents) to %s\n", build.ID, build.DocumentCount, c.DB)
	return nil
}

// generate loads the pages of dir and builds their site index.
func generate(deps *Dependencies, dir string, flags SiteFlags) (*docindex.SiteIndex, error) {
	playbook, err := flags.playbook(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return nil, err
	}

	pages, err := deps.NewPageLoader(dir).LoadPages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return nil, err
	}
	if len(pages) == 0 {
		fmt.Fprintf(deps.Stderr, "warning: no HTML pages found in %s\n", dir)
	}

	site, err := deps.Indexer.Generate(deps.Ctx, playbook, pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return nil, err
	}
	return site, nil
}
