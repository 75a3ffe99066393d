// Package geojson reduces region boundaries to representative points and
// joins valuation records onto them, using paulmach/orb geometries.
package geojson

import (
	"github.com/fwojciec/landval"
	"github.com/paulmach/orb"
)

// Centroid returns the representative point of a Polygon or MultiPolygon:
// the unweighted mean of its exterior-ring vertices. For a MultiPolygon the
// exterior rings of all polygons are pooled into one vertex set. Holes are
// ignored and so is the closing vertex of a closed ring.
//
// This is a vertex average, not an area centroid. Densely digitised stretches
// of a boundary pull the point towards them.
//
// Returns EUNSUPPORTED for any other geometry type and EEMPTYGEOMETRY when
// there are no exterior vertices.
func Centroid(g orb.Geometry) (orb.Point, error) {
	var rings []orb.Ring
	switch g := g.(type) {
	case orb.Polygon:
		if len(g) > 0 {
			rings = append(rings, g[0])
		}
	case orb.MultiPolygon:
		for _, p := range g {
			if len(p) > 0 {
				rings = append(rings, p[0])
			}
		}
	case nil:
		return orb.Point{}, landval.Errorf(landval.EUNSUPPORTED, "missing geometry")
	default:
		return orb.Point{}, landval.Errorf(landval.EUNSUPPORTED, "unsupported geometry type %s", g.GeoJSONType())
	}

	var sumX, sumY float64
	var n int
	for _, ring := range rings {
		for _, p := range openRing(ring) {
			sumX += p[0]
			sumY += p[1]
			n++
		}
	}
	if n == 0 {
		return orb.Point{}, landval.Errorf(landval.EEMPTYGEOMETRY, "geometry has no coordinates")
	}

	return orb.Point{sumX / float64(n), sumY / float64(n)}, nil
}

// openRing drops the closing vertex of a closed ring.
func openRing(r orb.Ring) orb.Ring {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}
