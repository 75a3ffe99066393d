package main

import (
	"fmt"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/csv"
	"github.com/fwojciec/landval/geojson"
)

// Run executes the points command.
func (c *PointsCmd) Run(deps *Dependencies) error {
	logger := deps.logger()

	files, err := csv.NewAggregator(logger).ReadDir(deps.Ctx, deps.Path(c.Dir))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}

	fc := geojson.NewCollection(nil)
	for _, f := range files {
		points := geojson.PointsFromRecords(f.Records, logger.With("file", f.Name))
		fc.Features = append(fc.Features, points.Features...)
	}
	if err := deps.writeCollection(c.Out, fc); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d points from %d files to %s\n", len(fc.Features), len(files), deps.Path(c.Out))
	return nil
}
