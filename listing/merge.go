// Package listing combines and filters extracted stories.
package listing

import "github.com/fwojciec/hnlist"

// Merge concatenates sets in order and drops stories whose ID has already
// been seen, keeping the first occurrence. Stories without an ID are always
// kept. seen records the IDs encountered and may be shared across calls to
// deduplicate against earlier runs.
func Merge(sets [][]*hnlist.Story, seen hnlist.SeenFilter) []*hnlist.Story {
	merged := []*hnlist.Story{}
	for _, set := range sets {
		for _, s := range set {
			if s == nil {
				continue
			}
			if s.ID != "" {
				if seen.Test(s.ID) {
					continue
				}
				seen.Add(s.ID)
			}
			merged = append(merged, s)
		}
	}
	return merged
}

// Count returns the total number of stories across sets.
func Count(sets [][]*hnlist.Story) int {
	var n int
	for _, set := range sets {
		n += len(set)
	}
	return n
}
