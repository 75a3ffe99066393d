package csv

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/landval"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of files parsed at once.
const DefaultConcurrency = 4

// Aggregator groups the records of a directory of per-region CSV files by
// region key.
type Aggregator struct {
	logger      *slog.Logger
	concurrency int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithConcurrency sets how many files are parsed at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// NewAggregator creates a new Aggregator.
func NewAggregator(logger *slog.Logger, opts ...Option) *Aggregator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Aggregator{
		logger:      logger,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// File is one parsed CSV file of a directory.
type File struct {
	Name    string
	Records []landval.Record
}

// ReadDir parses every ".csv" file in dir and returns them in directory
// listing order. A file that cannot be parsed is logged and left out.
//
// Returns ENOTFOUND if dir does not exist.
func (a *Aggregator) ReadDir(ctx context.Context, dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, landval.Errorf(landval.ENOTFOUND, "directory %q not found", dir)
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Suffix) {
			continue
		}
		names = append(names, e.Name())
	}

	// Files are parsed concurrently into fixed slots and collected
	// afterwards in listing order, so the result matches a sequential read.
	results := make([][]landval.Record, len(names))
	parsed := make([]bool, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, name)
			records, err := ReadRecordsFile(path)
			if err != nil {
				a.logger.Warn("skipping CSV file", "path", path, "err", err)
				return nil
			}
			results[i] = records
			parsed[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make([]File, 0, len(names))
	for i, name := range names {
		if parsed[i] {
			files = append(files, File{Name: name, Records: results[i]})
		}
	}
	return files, nil
}

// Aggregate reads every ".csv" file in dir and returns their records keyed
// by the region key of the file name. Records of files sharing a key are
// concatenated in directory listing order, each file's rows in row order.
// A file that cannot be parsed is logged and skipped; a readable file with
// no rows still registers its key.
//
// Returns ENOTFOUND if dir does not exist.
func (a *Aggregator) Aggregate(ctx context.Context, dir string) (landval.RecordGroups, error) {
	files, err := a.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	groups := make(landval.RecordGroups)
	for _, f := range files {
		key := landval.RegionKeyFromFilename(f.Name)
		groups[key] = append(groups[key], f.Records...)
		if groups[key] == nil {
			groups[key] = []landval.Record{}
		}
	}

	a.logger.Info("aggregated CSV files",
		"dir", dir,
		"files", len(files),
		"regions", len(groups),
	)
	return groups, nil
}
