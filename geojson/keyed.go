package geojson

import (
	"github.com/fwojciec/landval"
	"github.com/paulmach/orb/geojson"
)

// keyedFeature is a feature together with its resolved region key.
type keyedFeature struct {
	key     string
	feature *geojson.Feature
}

// keyFeatures splits features into those with a resolvable region key and
// those without one. Input order is preserved in both results.
func keyFeatures(features []*geojson.Feature) (keyed []keyedFeature, unkeyed []*geojson.Feature) {
	for _, f := range features {
		if f == nil {
			continue
		}
		key, ok := landval.RegionKeyFromProperties(f.Properties)
		if !ok {
			unkeyed = append(unkeyed, f)
			continue
		}
		keyed = append(keyed, keyedFeature{key: key, feature: f})
	}
	return keyed, unkeyed
}
