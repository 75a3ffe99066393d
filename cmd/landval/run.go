package main

// Run executes the run command: extract, boundaries, then combine.
func (c *RunCmd) Run(deps *Dependencies) error {
	extract := &ExtractCmd{
		HTML:        c.HTML,
		Residential: c.Residential,
		Commercial:  c.Commercial,
	}
	if err := extract.Run(deps); err != nil {
		return err
	}

	boundaries := &BoundariesCmd{
		Boundary: c.Boundary,
		Regions:  c.Regions,
		Out:      c.Points,
	}
	if err := boundaries.Run(deps); err != nil {
		return err
	}

	combine := &CombineCmd{
		Points:      c.Points,
		Commercial:  c.Commercial,
		Residential: c.Residential,
		Out:         c.Out,
		Concurrency: c.Concurrency,
	}
	return combine.Run(deps)
}
