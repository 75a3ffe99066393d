package main

import (
	"fmt"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/geojson"
)

// Run executes the boundaries command.
func (c *BoundariesCmd) Run(deps *Dependencies) error {
	regions, err := deps.readRegions(c.Regions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}

	features, err := deps.readBoundaries(c.Boundary)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}

	fc := geojson.NewBoundaryFilter(regions.Names(), deps.logger()).Filter(features)
	if err := deps.writeCollection(c.Out, fc); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d region points to %s\n", len(fc.Features), deps.Path(c.Out))
	return nil
}
