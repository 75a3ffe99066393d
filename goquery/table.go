package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/landval"
)

// ParseTable converts a table element into column names and records.
// The header comes from the first row of thead, else the first row holding
// th cells, else the first row. Every following row becomes a record.
// Returns EINVALID if the table has no rows with cells.
func ParseTable(sel *goquery.Selection) (*landval.Table, error) {
	rows := ownRows(sel)
	if len(rows) == 0 {
		return nil, landval.Errorf(landval.EINVALID, "table has no rows")
	}

	headerIdx := headerRow(rows)
	columns := columnNames(rows[headerIdx])

	table := &landval.Table{Columns: columns}
	for _, row := range rows[headerIdx+1:] {
		cells := rowCells(row)
		record := make(landval.Record, len(columns))
		for i, col := range columns {
			if i < len(cells) {
				record[col] = cells[i]
			} else {
				record[col] = ""
			}
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

// ownRows returns the rows of a table that contain at least one cell,
// skipping rows that belong to nested tables.
func ownRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if !tr.Closest("table").IsSelection(table) {
			return
		}
		if tr.ChildrenFiltered("th, td").Length() == 0 {
			return
		}
		rows = append(rows, tr)
	})
	return rows
}

func headerRow(rows []*goquery.Selection) int {
	for i, row := range rows {
		if goquery.NodeName(row.Parent()) == "thead" {
			return i
		}
	}
	for i, row := range rows {
		if row.ChildrenFiltered("th").Length() > 0 {
			return i
		}
	}
	return 0
}

// rowCells returns the normalized text of each cell in the row.
// A cell spanning several columns is repeated once per column.
func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.Join(strings.Fields(cell.Text()), " ")
		span := 1
		if v, ok := cell.Attr("colspan"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 1 {
				span = n
			}
		}
		for range span {
			cells = append(cells, text)
		}
	})
	return cells
}

// columnNames names every header cell, filling blanks with "Unnamed: <i>"
// and suffixing repeated names with ".1", ".2" and so on.
func columnNames(row *goquery.Selection) []string {
	cells := rowCells(row)
	names := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for i, name := range cells {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}
