package geojson

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fwojciec/landval"
	"github.com/paulmach/orb/geojson"
)

// Top-level GeoJSON object types accepted as boundary documents.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
)

// document is the top level of a GeoJSON file. Features are kept raw so
// each one is decoded on its own and a bad feature does not sink the rest.
type document struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// DecodeFeatures decodes a FeatureCollection or a single Feature.
// Features that fail to decode are logged and skipped. Any other top-level
// type yields no features and a warning. Returns EINVALID if data is not a
// JSON object.
func DecodeFeatures(data []byte, logger *slog.Logger) ([]*geojson.Feature, error) {
	logger = loggerOrDiscard(logger)

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, landval.Errorf(landval.EINVALID, "could not decode GeoJSON: %v", err)
	}

	switch doc.Type {
	case TypeFeatureCollection:
		features := make([]*geojson.Feature, 0, len(doc.Features))
		for i, raw := range doc.Features {
			f, err := geojson.UnmarshalFeature(raw)
			if err != nil {
				logger.Warn("skipping undecodable feature", "index", i, "err", err)
				continue
			}
			features = append(features, f)
		}
		return features, nil
	case TypeFeature:
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			logger.Warn("skipping undecodable feature", "index", 0, "err", err)
			return nil, nil
		}
		return []*geojson.Feature{f}, nil
	default:
		logger.Warn("input is not a FeatureCollection or Feature", "type", doc.Type)
		return nil, nil
	}
}

// ReadFeatures reads and decodes a GeoJSON file.
// Returns ENOTFOUND if the file does not exist.
func ReadFeatures(path string, logger *slog.Logger) ([]*geojson.Feature, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, landval.Errorf(landval.ENOTFOUND, "GeoJSON file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	return DecodeFeatures(data, logger)
}

// Encode renders a feature collection as indented GeoJSON.
func Encode(fc *geojson.FeatureCollection) ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}

// NewCollection wraps features in a FeatureCollection.
// A nil slice is encoded as an empty features array.
func NewCollection(features []*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Features = append(fc.Features, features...)
	return fc
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
