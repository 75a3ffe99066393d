package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/landval"
)

// Compile-time interface verification.
var (
	_ landval.TableExtractor = (*LoggingTableExtractor)(nil)
	_ landval.TableStore     = (*LoggingTableStore)(nil)
)

// LoggingTableExtractor wraps a TableExtractor with debug logging.
type LoggingTableExtractor struct {
	next   landval.TableExtractor
	logger *slog.Logger
}

// NewLoggingTableExtractor creates a new LoggingTableExtractor.
func NewLoggingTableExtractor(next landval.TableExtractor, logger *slog.Logger) *LoggingTableExtractor {
	return &LoggingTableExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingTableExtractor) Extract(r io.Reader) (tables *landval.DocumentTables, err error) {
	defer func(begin time.Time) {
		var residential, commercial int
		if tables != nil {
			if tables.Residential != nil {
				residential = len(tables.Residential.Records)
			}
			if tables.Commercial != nil {
				commercial = len(tables.Commercial.Records)
			}
		}
		e.logger.Debug("extract tables",
			"residential_rows", residential,
			"commercial_rows", commercial,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(r)
}

// LoggingTableStore wraps a TableStore with debug logging.
type LoggingTableStore struct {
	next   landval.TableStore
	logger *slog.Logger
}

// NewLoggingTableStore creates a new LoggingTableStore.
func NewLoggingTableStore(next landval.TableStore, logger *slog.Logger) *LoggingTableStore {
	return &LoggingTableStore{next: next, logger: logger}
}

// SaveTables delegates to the wrapped store and logs the write.
func (s *LoggingTableStore) SaveTables(region string, tables *landval.DocumentTables) (err error) {
	defer func(begin time.Time) {
		var count int
		if tables != nil {
			count = len(tables.Entries())
		}
		s.logger.Debug("save tables",
			"region", region,
			"tables", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveTables(region, tables)
}
