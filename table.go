package landval

import "io"

// Record is one valuation table row keyed by column name.
// Values are kept verbatim as they appeared in the source.
type Record map[string]string

// Table is a parsed valuation table.
type Table struct {
	Category Category
	Columns  []string
	Records  []Record
}

// DocumentTables holds the tables extracted from one region page.
// A page yields at most one residential table and one table for the
// commercial family (commercial, industrial or rural).
type DocumentTables struct {
	Residential *Table

	// Commercial holds the last non-residential table parsed from the page.
	// Its Category is the label of the last non-residential heading seen,
	// which is not necessarily the heading the table was found under.
	Commercial *Table

	commercialLabel Category
}

// Apply folds one recognized heading and its parsed table into the result.
// A nil table means the heading had no parseable table after it.
//
// Residential headings only touch the residential slot. Every other heading
// relabels the commercial slot, and replaces its table when one was parsed,
// so a later industrial or rural section overrides an earlier one.
func (d *DocumentTables) Apply(category Category, table *Table) {
	if category == CategoryResidential {
		if table != nil {
			table.Category = CategoryResidential
			d.Residential = table
		}
		return
	}
	if !category.IsCommercialFamily() {
		return
	}

	d.commercialLabel = category
	if table != nil {
		d.Commercial = table
	}
	if d.Commercial != nil {
		d.Commercial.Category = d.commercialLabel
	}
}

// Entries returns the populated tables, residential first.
func (d *DocumentTables) Entries() []*Table {
	var entries []*Table
	if d.Residential != nil {
		entries = append(entries, d.Residential)
	}
	if d.Commercial != nil {
		entries = append(entries, d.Commercial)
	}
	return entries
}

// TableExtractor extracts valuation tables from a region page.
type TableExtractor interface {
	// Extract parses an HTML document and returns its valuation tables.
	// A document without recognized headings yields an empty result.
	Extract(r io.Reader) (*DocumentTables, error)
}

// TableStore persists the tables extracted for a region.
type TableStore interface {
	SaveTables(region string, tables *DocumentTables) error
}
