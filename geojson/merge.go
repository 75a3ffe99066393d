package geojson

import (
	"log/slog"

	"github.com/paulmach/orb/geojson"
)

// Merge concatenates the features of several GeoJSON files, in path order.
// A file that cannot be read or decoded is logged and skipped.
func Merge(paths []string, logger *slog.Logger) *geojson.FeatureCollection {
	logger = loggerOrDiscard(logger)

	fc := NewCollection(nil)
	for _, path := range paths {
		features, err := ReadFeatures(path, logger)
		if err != nil {
			logger.Warn("skipping GeoJSON file", "path", path, "err", err)
			continue
		}
		fc.Features = append(fc.Features, features...)
	}
	return fc
}
