package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/landval/cmd/landval"
	"github.com/fwojciec/landval/goquery"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
)

const albury = `<html><body>
<h4>Typical residential land values</h4>
<table>
	<tr><th>Suburb</th><th>Land value</th></tr>
	<tr><td>Albury</td><td>$250,000</td></tr>
	<tr><td>Lavington</td><td>$180,000</td></tr>
</table>
<h4>Typical industrial land values</h4>
<table>
	<tr><th>Zone</th><th>Land value</th></tr>
	<tr><td>IN1</td><td>$900,000</td></tr>
</table>
</body></html>`

const boundaries = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]},
      "properties": {"abb_name": "ABC", "lga_code": "140"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[10,10],[12,10],[12,12],[10,12],[10,10]]]},
      "properties": {"abb_name": "XYZ"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[20,20],[22,20],[22,22],[20,22],[20,20]]]},
      "properties": {"abb_name": "UNLISTED"}
    }
  ]
}`

const regionList = "140 ABC\n171 XYZ\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readCollection(t *testing.T, path string) *geojson.FeatureCollection {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	return fc
}

// newDeps returns dependencies rooted at dir with captured output.
func newDeps(dir string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Dir:       dir,
		Extractor: goquery.NewTableExtractor(nil),
	}, stdout, stderr
}
