// Package bloom tracks which valuation page URLs a download run has already
// requested.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate is the false positive rate of a URLSet.
const DefaultFalsePositiveRate = 0.001

// URLSet is an approximate set of requested URLs.
// A false positive makes a URL look visited; a false negative is not possible.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a URLSet sized for n expected URLs.
func NewURLSet(n int) *URLSet {
	return &URLSet{
		f: bloom.NewWithEstimates(uint(max(n, 1)), DefaultFalsePositiveRate),
	}
}

// Visit records url and reports whether it was already recorded.
func (s *URLSet) Visit(url string) bool {
	return s.f.TestAndAddString(url)
}

// Len returns the approximate number of recorded URLs.
func (s *URLSet) Len() int {
	return int(s.f.ApproximatedSize())
}
