package main

import (
	"fmt"

	"github.com/fwojciec/landval/geojson"
)

// Run executes the merge command.
func (c *MergeCmd) Run(deps *Dependencies) error {
	paths := make([]string, len(c.Files))
	for i, f := range c.Files {
		paths[i] = deps.Path(f)
	}

	fc := geojson.Merge(paths, deps.logger())
	if err := deps.writeCollection(c.Out, fc); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d features to %s\n", len(fc.Features), deps.Path(c.Out))
	return nil
}
