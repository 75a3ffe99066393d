package landval_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/landval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionKeyFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "category suffix", filename: "ABC_industrial.csv", want: "ABC"},
		{name: "numbered parts", filename: "ABC_2.csv", want: "ABC"},
		{name: "no underscore", filename: "ABC.csv", want: "ABC"},
		{name: "several underscores", filename: "Upper_Hunter_rural.csv", want: "Upper"},
		{name: "full path", filename: "/data/commercial/Albury_commercial.csv", want: "Albury"},
		{name: "name with spaces", filename: "Blue Mountains_commercial.csv", want: "Blue Mountains"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, landval.RegionKeyFromFilename(tt.filename))
		})
	}
}

func TestRegionKeyFromDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Blue Mountains", landval.RegionKeyFromDocument("html/Blue Mountains.html"))
	assert.Equal(t, "Upper_Hunter", landval.RegionKeyFromDocument("Upper_Hunter.html"))
}

func TestRegionKeyFromProperties(t *testing.T) {
	t.Parallel()

	t.Run("reads abb_name", func(t *testing.T) {
		t.Parallel()

		key, ok := landval.RegionKeyFromProperties(map[string]any{"abb_name": "ABC", "other": 1})

		assert.True(t, ok)
		assert.Equal(t, "ABC", key)
	})

	t.Run("reports missing property", func(t *testing.T) {
		t.Parallel()

		_, ok := landval.RegionKeyFromProperties(map[string]any{"name": "ABC"})

		assert.False(t, ok)
	})

	t.Run("reports empty and non-string values", func(t *testing.T) {
		t.Parallel()

		_, ok := landval.RegionKeyFromProperties(map[string]any{"abb_name": ""})
		assert.False(t, ok)

		_, ok = landval.RegionKeyFromProperties(map[string]any{"abb_name": 42.0})
		assert.False(t, ok)
	})

	t.Run("handles nil properties", func(t *testing.T) {
		t.Parallel()

		_, ok := landval.RegionKeyFromProperties(nil)

		assert.False(t, ok)
	})
}

func TestParseRegionList(t *testing.T) {
	t.Parallel()

	t.Run("parses code and name per line", func(t *testing.T) {
		t.Parallel()

		input := "010 Albury\n\n020 Blue Mountains\ngarbage\n  030 Cobar  \n"

		regions, err := landval.ParseRegionList(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, landval.RegionList{
			{Code: "010", Name: "Albury"},
			{Code: "020", Name: "Blue Mountains"},
			{Code: "030", Name: "Cobar"},
		}, regions)
	})

	t.Run("returns empty list for empty input", func(t *testing.T) {
		t.Parallel()

		regions, err := landval.ParseRegionList(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, regions)
	})
}

func TestRegionList_Names(t *testing.T) {
	t.Parallel()

	regions := landval.RegionList{{Code: "010", Name: "Albury"}, {Code: "020", Name: "Cobar"}}

	names := regions.Names()

	assert.True(t, names.Contains("Albury"))
	assert.True(t, names.Contains("Cobar"))
	assert.False(t, names.Contains("010"))
	assert.Len(t, names, 2)
}

func TestNewKeySet(t *testing.T) {
	t.Parallel()

	s := landval.NewKeySet("A", "B", "A")

	assert.Len(t, s, 2)
	assert.True(t, s.Contains("A"))
	assert.False(t, s.Contains("C"))
}
