package fs

import (
	"bytes"
	"path/filepath"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/csv"
)

// Ensure TableStore implements landval.TableStore at compile time.
var _ landval.TableStore = (*TableStore)(nil)

// TableStore writes extracted tables as per-region CSV files.
// Residential tables go to residentialDir/<region>.csv and commercial-family
// tables to commercialDir/<region>_<category>.csv, so the category survives
// in the file name while the region key stays the part before the first
// underscore.
type TableStore struct {
	residentialDir string
	commercialDir  string
}

// NewTableStore creates a new TableStore.
func NewTableStore(residentialDir, commercialDir string) *TableStore {
	return &TableStore{
		residentialDir: residentialDir,
		commercialDir:  commercialDir,
	}
}

// TablePath returns the file a region's table is written to.
func (s *TableStore) TablePath(region string, table *landval.Table) string {
	if table.Category == landval.CategoryResidential {
		return filepath.Join(s.residentialDir, region+".csv")
	}
	return filepath.Join(s.commercialDir, region+"_"+string(table.Category)+".csv")
}

// SaveTables writes every populated table of a region.
func (s *TableStore) SaveTables(region string, tables *landval.DocumentTables) error {
	if region == "" {
		return landval.Errorf(landval.EINVALID, "region required")
	}
	if tables == nil {
		return nil
	}

	for _, table := range tables.Entries() {
		var buf bytes.Buffer
		if err := csv.WriteTable(&buf, table); err != nil {
			return err
		}
		if err := WriteFileAtomic(s.TablePath(region, table), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
