package landval

import "context"

// Fetcher downloads the HTML of a region valuation page.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// Returns ENOTFOUND if the server reports the page as missing.
	Fetch(ctx context.Context, url string) (html string, err error)

	Close() error
}

// DomainLimiter spaces out requests made to the same host.
type DomainLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}
