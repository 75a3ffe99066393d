// Package csv reads and writes per-region valuation CSV files.
package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/landval"
)

// Suffix is the file suffix of per-region valuation files.
const Suffix = ".csv"

var bom = []byte("\xef\xbb\xbf")

// ReadRecords parses CSV data into records. The first row names the fields.
// Short rows are padded with empty strings and extra values are dropped.
// Empty input yields no records.
func ReadRecords(r io.Reader) ([]landval.Record, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(bom)); err == nil && bytes.Equal(prefix, bom) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []landval.Record{}, nil
	} else if err != nil {
		return nil, landval.Errorf(landval.EINVALID, "read header: %v", err)
	}

	records := []landval.Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, landval.Errorf(landval.EINVALID, "read row: %v", err)
		}

		rec := make(landval.Record, len(header))
		for i, field := range header {
			if i < len(row) {
				rec[field] = row[i]
			} else {
				rec[field] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadRecordsFile parses the CSV file at path.
func ReadRecordsFile(path string) ([]landval.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecords(f)
}

// WriteTable writes a table as CSV: the column names, then one row per
// record with values in column order.
func WriteTable(w io.Writer, table *landval.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	row := make([]string, len(table.Columns))
	for _, rec := range table.Records {
		for i, col := range table.Columns {
			row[i] = rec[col]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
