package geojson

import (
	"log/slog"

	"github.com/fwojciec/landval"
	"github.com/paulmach/orb/geojson"
)

// Joiner attaches region-keyed record groups to boundary point features.
type Joiner struct {
	logger *slog.Logger
}

// NewJoiner creates a new Joiner.
func NewJoiner(logger *slog.Logger) *Joiner {
	return &Joiner{logger: loggerOrDiscard(logger)}
}

// Join returns a new FeatureCollection holding one feature per input
// feature that has a region key, in input order. Features without a key
// are excluded, not passed through. Each output feature keeps the input
// geometry and properties, plus one property per group whose mapping
// contains the feature's key.
func (j *Joiner) Join(fc *geojson.FeatureCollection, groups ...landval.NamedGroups) *geojson.FeatureCollection {
	var features []*geojson.Feature
	if fc != nil {
		features = fc.Features
	}

	keyed, unkeyed := keyFeatures(features)
	for _, f := range unkeyed {
		j.logger.Warn("skipping feature without region key",
			"property", landval.RegionProperty,
			"id", f.ID,
		)
	}

	out := NewCollection(nil)
	for _, kf := range keyed {
		props := kf.feature.Properties.Clone()
		for _, g := range groups {
			if records, ok := g.Groups[kf.key]; ok {
				props[g.Property] = records
			}
		}

		f := geojson.NewFeature(kf.feature.Geometry)
		f.ID = kf.feature.ID
		f.Properties = props
		out.Append(f)
	}

	j.logger.Info("joined features",
		"input", len(features),
		"output", len(out.Features),
	)
	return out
}
