package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/landval"
	lvfs "github.com/fwojciec/landval/fs"
	lvslog "github.com/fwojciec/landval/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	logger := deps.logger()
	dir := deps.Path(c.HTML)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		err = landval.Errorf(landval.ENOTFOUND, "page directory %s not found; run 'landval fetch' first", c.HTML)
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	} else if err != nil {
		return err
	}

	for _, out := range []string{c.Residential, c.Commercial} {
		if err := os.MkdirAll(deps.Path(out), 0755); err != nil {
			return err
		}
	}

	store := lvslog.NewLoggingTableStore(
		lvfs.NewTableStore(deps.Path(c.Residential), deps.Path(c.Commercial)),
		logger,
	)

	var pages, residential, commercial int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), lvfs.PageExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		region := landval.RegionKeyFromDocument(e.Name())

		tables, err := extractFile(deps.Extractor, path)
		if err != nil {
			logger.Warn("skipping page", "path", path, "err", err)
			continue
		}
		pages++

		if len(tables.Entries()) == 0 {
			logger.Info("no valuation tables found", "region", region)
			continue
		}
		if err := store.SaveTables(region, tables); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", region, err)
			return err
		}
		if tables.Residential != nil {
			residential++
		}
		if tables.Commercial != nil {
			commercial++
		}
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d residential and %d commercial tables from %d pages\n",
		residential, commercial, pages)
	return nil
}

func extractFile(extractor landval.TableExtractor, path string) (*landval.DocumentTables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return extractor.Extract(f)
}
