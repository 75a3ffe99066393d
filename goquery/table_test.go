package goquery_test

import (
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstTable(t *testing.T, html string) *pq.Selection {
	t.Helper()
	doc, err := pq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Find("table").First()
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	t.Run("uses th row as header", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table>
<tr><th>Suburb</th><th>Value</th></tr>
<tr><td> North  Albury </td><td>100</td></tr>
</table>`)

		table, err := goquery.ParseTable(sel)

		require.NoError(t, err)
		assert.Equal(t, []string{"Suburb", "Value"}, table.Columns)
		assert.Equal(t, []landval.Record{{"Suburb": "North Albury", "Value": "100"}}, table.Records)
	})

	t.Run("uses thead row as header", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table>
<thead><tr><th>A</th><th>B</th></tr></thead>
<tbody><tr><td>1</td><td>2</td></tr></tbody>
</table>`)

		table, err := goquery.ParseTable(sel)

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, table.Columns)
		require.Len(t, table.Records, 1)
	})

	t.Run("falls back to first row when there are no th cells", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table><tr><td>A</td></tr><tr><td>1</td></tr></table>`)

		table, err := goquery.ParseTable(sel)

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, table.Columns)
		assert.Equal(t, []landval.Record{{"A": "1"}}, table.Records)
	})

	t.Run("names blank and duplicate headers", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table><tr><th>Value</th><th></th><th>Value</th><th>Value</th></tr></table>`)

		table, err := goquery.ParseTable(sel)

		require.NoError(t, err)
		assert.Equal(t, []string{"Value", "Unnamed: 1", "Value.1", "Value.2"}, table.Columns)
		assert.Empty(t, table.Records)
	})

	t.Run("pads short rows and drops extra cells", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table>
<tr><th>A</th><th>B</th></tr>
<tr><td>1</td></tr>
<tr><td>1</td><td>2</td><td>3</td></tr>
</table>`)

		table, err := goquery.ParseTable(sel)

		require.NoError(t, err)
		assert.Equal(t, []landval.Record{
			{"A": "1", "B": ""},
			{"A": "1", "B": "2"},
		}, table.Records)
	})

	t.Run("repeats cells spanning several columns", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table>
<tr><th>A</th><th>B</th><th>C</th></tr>
<tr><td colspan="2">wide</td><td>3</td></tr>
</table>`)

		table, err := goquery.ParseTable(sel)

		require.NoError(t, err)
		assert.Equal(t, landval.Record{"A": "wide", "B": "wide", "C": "3"}, table.Records[0])
	})

	t.Run("ignores rows of nested tables", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table>
<tr><th>A</th></tr>
<tr><td>outer<table><tr><td>inner</td></tr></table></td></tr>
</table>`)

		table, err := goquery.ParseTable(sel)

		require.NoError(t, err)
		require.Len(t, table.Records, 1)
		assert.Equal(t, "outerinner", table.Records[0]["A"])
	})

	t.Run("returns error for table without rows", func(t *testing.T) {
		t.Parallel()

		sel := firstTable(t, `<table></table>`)

		_, err := goquery.ParseTable(sel)

		require.Error(t, err)
		assert.Equal(t, landval.EINVALID, landval.ErrorCode(err))
	})
}
