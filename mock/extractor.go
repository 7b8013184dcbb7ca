package mock

import "github.com/fwojciec/hnlist"

var _ hnlist.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of hnlist.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(doc hnlist.Document) ([]*hnlist.Story, error)
}

func (e *ListingExtractor) Extract(doc hnlist.Document) ([]*hnlist.Story, error) {
	return e.ExtractFn(doc)
}
