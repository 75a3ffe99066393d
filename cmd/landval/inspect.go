package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fwojciec/landval"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	tables, err := extractFile(deps.Extractor, deps.Path(c.File))
	if errors.Is(err, fs.ErrNotExist) {
		err = landval.Errorf(landval.ENOTFOUND, "page %s not found", c.File)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}

	entries := tables.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No valuation tables found.")
		return nil
	}

	for _, tbl := range entries {
		fmt.Fprintf(deps.Stdout, "%s (%d rows)\n", tbl.Category, len(tbl.Records))

		t := table.NewWriter()
		t.SetOutputMirror(deps.Stdout)

		header := make(table.Row, len(tbl.Columns))
		for i, col := range tbl.Columns {
			header[i] = col
		}
		t.AppendHeader(header)

		for i, rec := range tbl.Records {
			if c.Limit > 0 && i >= c.Limit {
				break
			}
			row := make(table.Row, len(tbl.Columns))
			for j, col := range tbl.Columns {
				row[j] = rec[col]
			}
			t.AppendRow(row)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	}
	return nil
}
