package shp_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/geojson"
	landvalshp "github.com/fwojciec/landval/shp"
	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Clockwise outer ring and counter-clockwise hole, as shapefiles store them.
var (
	outer = []shp.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0}}
	hole  = []shp.Point{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5}, {X: 0.5, Y: 0.5}}
	other = []shp.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}}
)

type record struct {
	name  string
	parts [][]shp.Point
}

// writeShapefile creates dir/regions.shp with an abb_name attribute per shape.
func writeShapefile(t *testing.T, dir string, records []record) string {
	t.Helper()

	path := filepath.Join(dir, "regions.shp")
	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{shp.StringField(landval.RegionProperty, 32)}))
	for _, rec := range records {
		poly := shp.Polygon(*shp.NewPolyLine(rec.parts))
		row := w.Write(&poly)
		require.NoError(t, w.WriteAttribute(int(row), 0, rec.name))
	}
	w.Close()

	// The writer names the attribute table "regionsdbf".
	require.NoError(t, os.Rename(filepath.Join(dir, "regionsdbf"), filepath.Join(dir, "regions.dbf")))
	return path
}

func zipShapefile(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "regions.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, name := range []string{"regions.shp", "regions.shx", "regions.dbf"} {
		src, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		dst, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.Copy(dst, src)
		require.NoError(t, err)
		require.NoError(t, src.Close())
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReadBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("reads polygons with attributes as properties", func(t *testing.T) {
		t.Parallel()

		path := writeShapefile(t, t.TempDir(), []record{
			{name: "Albury", parts: [][]shp.Point{outer}},
			{name: "Dubbo", parts: [][]shp.Point{other}},
		})

		features, err := landvalshp.ReadBoundaries(path, nil)

		require.NoError(t, err)
		require.Len(t, features, 2)
		assert.Equal(t, "Albury", features[0].Properties[landval.RegionProperty])
		assert.Equal(t, "Dubbo", features[1].Properties[landval.RegionProperty])
		polygon, ok := features[0].Geometry.(orb.Polygon)
		require.True(t, ok, "expected polygon, got %T", features[0].Geometry)
		require.Len(t, polygon, 1)
		assert.Equal(t, orb.CCW, polygon[0].Orientation(), "exterior ring should be counter-clockwise")
	})

	t.Run("counter-clockwise parts become holes", func(t *testing.T) {
		t.Parallel()

		path := writeShapefile(t, t.TempDir(), []record{
			{name: "Albury", parts: [][]shp.Point{outer, hole}},
		})

		features, err := landvalshp.ReadBoundaries(path, nil)

		require.NoError(t, err)
		require.Len(t, features, 1)
		polygon, ok := features[0].Geometry.(orb.Polygon)
		require.True(t, ok, "expected polygon, got %T", features[0].Geometry)
		assert.Len(t, polygon, 2)
	})

	t.Run("several outer rings become a multipolygon", func(t *testing.T) {
		t.Parallel()

		path := writeShapefile(t, t.TempDir(), []record{
			{name: "Eurobodalla", parts: [][]shp.Point{outer, hole, other}},
		})

		features, err := landvalshp.ReadBoundaries(path, nil)

		require.NoError(t, err)
		require.Len(t, features, 1)
		multi, ok := features[0].Geometry.(orb.MultiPolygon)
		require.True(t, ok, "expected multipolygon, got %T", features[0].Geometry)
		require.Len(t, multi, 2)
		assert.Len(t, multi[0], 2)
		assert.Len(t, multi[1], 1)
	})

	t.Run("reads shapefile from zip archive", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeShapefile(t, dir, []record{{name: "Albury", parts: [][]shp.Point{outer}}})
		path := zipShapefile(t, dir)

		features, err := landvalshp.ReadBoundaries(path, nil)

		require.NoError(t, err)
		require.Len(t, features, 1)
		assert.Equal(t, "Albury", features[0].Properties[landval.RegionProperty])
	})

	t.Run("padded names still match the region list", func(t *testing.T) {
		t.Parallel()

		path := writeShapefile(t, t.TempDir(), []record{
			{name: "Albury", parts: [][]shp.Point{outer}},
			{name: "Dubbo", parts: [][]shp.Point{other}},
		})
		features, err := landvalshp.ReadBoundaries(path, nil)
		require.NoError(t, err)

		fc := geojson.NewBoundaryFilter(landval.NewKeySet("Albury"), nil).Filter(features)

		require.Len(t, fc.Features, 1)
		assert.Equal(t, "Albury", fc.Features[0].Properties[landval.RegionProperty])
		assert.Equal(t, orb.Point{1, 1}, fc.Features[0].Geometry)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := landvalshp.ReadBoundaries(filepath.Join(t.TempDir(), "missing.shp"), nil)

		assert.Equal(t, landval.ENOTFOUND, landval.ErrorCode(err))
	})

	t.Run("rejects other file types", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "regions.kml")
		require.NoError(t, os.WriteFile(path, []byte("<kml/>"), 0644))

		_, err := landvalshp.ReadBoundaries(path, nil)

		assert.Equal(t, landval.EUNSUPPORTED, landval.ErrorCode(err))
	})
}

func TestIsShapefile(t *testing.T) {
	t.Parallel()

	assert.True(t, landvalshp.IsShapefile("boundaries/LGA_2024.shp"))
	assert.True(t, landvalshp.IsShapefile("LGA_2024.ZIP"))
	assert.False(t, landvalshp.IsShapefile("lga_boundaries.geojson"))
}
