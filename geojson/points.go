package geojson

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/fwojciec/landval"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Columns read when turning geocoded valuation rows into point features.
const (
	LatitudeColumn  = "Latitude"
	LongitudeColumn = "Longitude"
)

// PointColumns are the record fields copied onto each point feature.
// A field missing from the record is written as null.
var PointColumns = []string{"LGA", "Suburb", "Postcode", "Category", "Land Value", "Date of Valuation"}

// PointsFromRecords builds one point feature per record that has numeric
// Latitude and Longitude fields. Other records are logged and skipped.
func PointsFromRecords(records []landval.Record, logger *slog.Logger) *geojson.FeatureCollection {
	logger = loggerOrDiscard(logger)

	fc := NewCollection(nil)
	for i, rec := range records {
		lat, err := parseCoordinate(rec, LatitudeColumn)
		if err != nil {
			logger.Warn("skipping row without coordinates", "row", i, "err", err)
			continue
		}
		lon, err := parseCoordinate(rec, LongitudeColumn)
		if err != nil {
			logger.Warn("skipping row without coordinates", "row", i, "err", err)
			continue
		}

		f := geojson.NewFeature(orb.Point{lon, lat})
		for _, col := range PointColumns {
			if v, ok := rec[col]; ok {
				f.Properties[col] = v
			} else {
				f.Properties[col] = nil
			}
		}
		fc.Append(f)
	}
	return fc
}

func parseCoordinate(rec landval.Record, column string) (float64, error) {
	v, ok := rec[column]
	if !ok {
		return 0, landval.Errorf(landval.EINVALID, "missing %s", column)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, landval.Errorf(landval.EINVALID, "invalid %s %q", column, v)
	}
	return f, nil
}
