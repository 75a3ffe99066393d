// Package shp reads region boundaries from ESRI shapefiles.
package shp

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/landval"
	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Supported boundary file extensions.
const (
	ExtShapefile = ".shp"
	ExtZip       = ".zip"
)

// reader is the subset of shapefile readers shared by plain and zipped
// shapefiles.
type reader interface {
	Next() bool
	Shape() (int, shp.Shape)
	Attribute(n int) string
	Fields() []shp.Field
	Err() error
	Close() error
}

// IsShapefile reports whether path names a boundary file this package reads.
func IsShapefile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtShapefile, ExtZip:
		return true
	}
	return false
}

// ReadBoundaries reads polygon features from a .shp file, or from a .zip
// archive containing exactly one shapefile. Attribute table values become
// string properties. Shapes that are not polygons are logged and skipped.
func ReadBoundaries(path string, logger *slog.Logger) ([]*geojson.Feature, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, landval.Errorf(landval.ENOTFOUND, "boundary file %s not found", path)
	}

	var r reader
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtShapefile:
		r, err = shp.Open(path)
	case ExtZip:
		r, err = shp.OpenZip(path)
	default:
		return nil, landval.Errorf(landval.EUNSUPPORTED, "unsupported boundary file %s", path)
	}
	if err != nil {
		return nil, landval.Errorf(landval.EINVALID, "could not open shapefile %s: %v", path, err)
	}
	defer r.Close()

	fields := r.Fields()
	var features []*geojson.Feature
	for r.Next() {
		idx, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			logger.Debug("skipping non-polygon shape", "index", idx)
			continue
		}

		geometry := polygonGeometry(poly)
		if geometry == nil {
			logger.Warn("skipping shape without rings", "index", idx)
			continue
		}

		feature := geojson.NewFeature(geometry)
		for i, f := range fields {
			feature.Properties[f.String()] = attribute(r, i)
		}
		features = append(features, feature)
	}
	if err := r.Err(); err != nil {
		return nil, landval.Errorf(landval.EINVALID, "could not read shapefile %s: %v", path, err)
	}

	logger.Info("read shapefile boundaries", "path", path, "features", len(features))
	return features, nil
}

// attribute returns a DBF value without its fixed-width padding.
func attribute(r reader, field int) string {
	return strings.TrimRight(r.Attribute(field), "\x00 ")
}

// polygonGeometry groups the parts of a shapefile polygon into polygons.
// Shapefile outer rings are clockwise and holes counter-clockwise; each
// outer ring starts a new polygon and each hole belongs to the polygon
// before it. Rings are reversed to the GeoJSON winding order.
func polygonGeometry(poly *shp.Polygon) orb.Geometry {
	var polygons orb.MultiPolygon
	for _, ring := range rings(poly) {
		hole := ring.Orientation() == orb.CCW
		ring.Reverse()
		if hole && len(polygons) > 0 {
			last := len(polygons) - 1
			polygons[last] = append(polygons[last], ring)
			continue
		}
		polygons = append(polygons, orb.Polygon{ring})
	}

	switch len(polygons) {
	case 0:
		return nil
	case 1:
		return polygons[0]
	default:
		return polygons
	}
}

// rings splits the flat point list of a polygon into its parts.
func rings(poly *shp.Polygon) []orb.Ring {
	var out []orb.Ring
	for i, start := range poly.Parts {
		end := int32(len(poly.Points))
		if i+1 < len(poly.Parts) {
			end = poly.Parts[i+1]
		}
		if start < 0 || end > int32(len(poly.Points)) || start >= end {
			continue
		}

		ring := make(orb.Ring, 0, end-start)
		for _, pt := range poly.Points[start:end] {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		out = append(out, ring)
	}
	return out
}
