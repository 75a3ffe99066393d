// Package crawl downloads region valuation pages. It coordinates URL
// construction, deduplication, rate limiting, fetching and storage.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/bloom"
	landvalhttp "github.com/fwojciec/landval/http"
)

// Downloader fetches the valuation page of every region in a list and
// saves it through a PageStore. Regions are processed one at a time.
type Downloader struct {
	Fetcher     landval.Fetcher
	Pages       landval.PageStore
	RateLimiter landval.DomainLimiter
	BaseURL     string
	BaseDate    string
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the outcome of a download run.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a download run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Region    landval.Region
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting download progress.
type ProgressFunc func(event ProgressEvent)

// Download fetches and saves the pages of all regions. A region whose page
// cannot be fetched is logged and counted as failed. Saved pages are
// committed when every region has been processed; a cancellation or store
// failure aborts the run and discards them.
func (d *Downloader) Download(ctx context.Context, regions landval.RegionList, progress ProgressFunc) (_ *Result, err error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	defer func() {
		if err != nil {
			if abortErr := d.Pages.Abort(); abortErr != nil {
				logger.Error("could not discard saved pages", "err", abortErr)
			}
		}
	}()

	seen := bloom.NewURLSet(len(regions))
	result := &Result{}
	total := len(regions)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	for i, region := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageURL, err := landvalhttp.ValuationURL(d.BaseURL, region.Code, d.BaseDate)
		if err != nil {
			return nil, err
		}
		if seen.Visit(pageURL) {
			logger.Debug("skipping duplicate region", "region", region.Name, "url", pageURL)
			result.Skipped++
			continue
		}

		html, err := d.fetch(ctx, pageURL, delays, logger)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("could not fetch region page", "region", region.Name, "url", pageURL, "err", err)
			result.Failed++
			progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, Region: region, Error: err})
			continue
		}

		page := &landval.Page{Region: region, URL: pageURL, HTML: html}
		if err := d.Pages.Save(ctx, page); err != nil {
			return nil, fmt.Errorf("save %s: %w", region.Name, err)
		}
		result.Saved++
		progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, Region: region})
	}

	if err := d.Pages.Commit(); err != nil {
		return nil, fmt.Errorf("commit pages: %w", err)
	}
	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	logger.Info("downloaded region pages",
		"urls", seen.Len(),
		"saved", result.Saved,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

func (d *Downloader) fetch(ctx context.Context, pageURL string, delays []time.Duration, logger *slog.Logger) (string, error) {
	fetch := d.Fetcher.Fetch
	if d.RateLimiter != nil {
		domain := ""
		if u, err := url.Parse(pageURL); err == nil {
			domain = u.Host
		}
		fetch = func(ctx context.Context, pageURL string) (string, error) {
			if err := d.RateLimiter.Wait(ctx, domain); err != nil {
				return "", err
			}
			return d.Fetcher.Fetch(ctx, pageURL)
		}
	}
	return FetchWithRetry(ctx, pageURL, fetch, logger, delays)
}
