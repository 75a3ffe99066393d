package main

import (
	"fmt"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/csv"
	"github.com/fwojciec/landval/geojson"
)

// Run executes the combine command.
func (c *CombineCmd) Run(deps *Dependencies) error {
	logger := deps.logger()

	features, err := geojson.ReadFeatures(deps.Path(c.Points), logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}

	aggregator := csv.NewAggregator(logger, csv.WithConcurrency(c.Concurrency))
	commercial, err := aggregator.Aggregate(deps.Ctx, deps.Path(c.Commercial))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}
	residential, err := aggregator.Aggregate(deps.Ctx, deps.Path(c.Residential))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", landval.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Aggregated commercial data for %d regions and residential data for %d regions\n",
		len(commercial), len(residential))

	fc := geojson.NewJoiner(logger).Join(geojson.NewCollection(features),
		landval.NamedGroups{Property: landval.CommercialProperty, Groups: commercial},
		landval.NamedGroups{Property: landval.ResidentialProperty, Groups: residential},
	)
	if err := deps.writeCollection(c.Out, fc); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d features to %s\n", len(fc.Features), deps.Path(c.Out))
	return nil
}
