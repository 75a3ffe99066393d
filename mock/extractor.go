package mock

import (
	"io"

	"github.com/fwojciec/landval"
)

// Compile-time interface verification.
var (
	_ landval.TableExtractor = (*TableExtractor)(nil)
	_ landval.TableStore     = (*TableStore)(nil)
)

// TableExtractor is a mock implementation of landval.TableExtractor.
type TableExtractor struct {
	ExtractFn func(r io.Reader) (*landval.DocumentTables, error)
}

func (e *TableExtractor) Extract(r io.Reader) (*landval.DocumentTables, error) {
	return e.ExtractFn(r)
}

// TableStore is a mock implementation of landval.TableStore.
type TableStore struct {
	SaveTablesFn func(region string, tables *landval.DocumentTables) error
}

func (s *TableStore) SaveTables(region string, tables *landval.DocumentTables) error {
	return s.SaveTablesFn(region, tables)
}
