package geojson

import (
	"log/slog"

	"github.com/fwojciec/landval"
	"github.com/paulmach/orb/geojson"
)

// BoundaryFilter keeps the boundaries of known regions and replaces each
// polygon with its representative point.
type BoundaryFilter struct {
	keep   landval.KeySet
	logger *slog.Logger
}

// NewBoundaryFilter creates a BoundaryFilter retaining the regions in keep.
func NewBoundaryFilter(keep landval.KeySet, logger *slog.Logger) *BoundaryFilter {
	return &BoundaryFilter{keep: keep, logger: loggerOrDiscard(logger)}
}

// Filter returns a point feature for every boundary whose region key is in
// the keep set, in input order. Each output feature carries only the region
// key property. Boundaries without a key, outside the keep set, or whose
// geometry has no representative point are dropped.
func (b *BoundaryFilter) Filter(features []*geojson.Feature) *geojson.FeatureCollection {
	keyed, unkeyed := keyFeatures(features)
	if len(unkeyed) > 0 {
		b.logger.Debug("dropped boundaries without region key", "count", len(unkeyed))
	}

	var kept []keyedFeature
	for _, kf := range keyed {
		if b.keep.Contains(kf.key) {
			kept = append(kept, kf)
		}
	}

	fc := NewCollection(nil)
	for _, kf := range kept {
		pt, err := Centroid(kf.feature.Geometry)
		if err != nil {
			b.logger.Warn("dropping boundary without representative point",
				"region", kf.key,
				"err", err,
			)
			continue
		}
		f := geojson.NewFeature(pt)
		f.Properties[landval.RegionProperty] = kf.key
		fc.Append(f)
	}

	b.logger.Info("filtered boundaries",
		"input", len(features),
		"output", len(fc.Features),
	)
	return fc
}
