package landval

import "context"

// Page represents a downloaded region valuation page.
type Page struct {
	Region Region
	URL    string
	HTML   string
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
