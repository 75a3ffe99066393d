package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/landval"
)

// Ensure LoggingPageStore implements landval.PageStore.
var _ landval.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with debug logging.
type LoggingPageStore struct {
	next   landval.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next landval.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the page.
func (s *LoggingPageStore) Save(ctx context.Context, page *landval.Page) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save page",
			"region", page.Region.Name,
			"bytes", len(page.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, page)
}

// Commit delegates to the wrapped store.
func (s *LoggingPageStore) Commit() (err error) {
	defer func() {
		s.logger.Info("commit pages", "err", err)
	}()
	return s.next.Commit()
}

// Abort delegates to the wrapped store.
func (s *LoggingPageStore) Abort() (err error) {
	defer func() {
		s.logger.Warn("abort pages", "err", err)
	}()
	return s.next.Abort()
}
