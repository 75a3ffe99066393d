package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/crawl"
	lvfs "github.com/fwojciec/landval/fs"
	lvslog "github.com/fwojciec/landval/slog"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if deps.Fetcher == nil {
		return fmt.Errorf("fetch: no fetcher configured")
	}

	regions, err := deps.readRegions(c.Regions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Fetching %d regions\n", len(regions))

	out := deps.Path(c.Out)
	store := lvfs.NewFileStore(filepath.Dir(out), filepath.Base(out))
	downloader := &crawl.Downloader{
		Fetcher:     deps.Fetcher,
		Pages:       lvslog.NewLoggingPageStore(store, deps.logger()),
		RateLimiter: deps.RateLimiter,
		BaseURL:     c.BaseURL,
		BaseDate:    c.BaseDate,
		RetryDelays: deps.RetryDelays,
		Logger:      deps.logger(),
	}

	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.Region.Name, e.Error)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %-40s", e.Completed, e.Total, e.Region.Name)
		}
	}

	result, err := downloader.Download(deps.Ctx, regions, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching: %v\n", err)
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	_, unchanged := store.Stats()
	fmt.Fprintf(deps.Stdout, "Saved %d pages to %s (%d unchanged, %d failed)\n",
		result.Saved, out, unchanged, result.Failed)
	return nil
}
