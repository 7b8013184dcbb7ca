package mock

import (
	"context"

	"github.com/fwojciec/hnlist"
)

var (
	_ hnlist.StoryFilter = (*StoryFilter)(nil)
	_ hnlist.SeenFilter  = (*SeenFilter)(nil)
)

// StoryFilter is a mock implementation of hnlist.StoryFilter.
type StoryFilter struct {
	FilterFn func(ctx context.Context, stories []*hnlist.Story) ([]*hnlist.Match, error)
}

func (f *StoryFilter) Filter(ctx context.Context, stories []*hnlist.Story) ([]*hnlist.Match, error) {
	return f.FilterFn(ctx, stories)
}

// SeenFilter is a mock implementation of hnlist.SeenFilter.
type SeenFilter struct {
	AddFn  func(id string)
	TestFn func(id string) bool
}

func (f *SeenFilter) Add(id string) {
	f.AddFn(id)
}

func (f *SeenFilter) Test(id string) bool {
	return f.TestFn(id)
}
