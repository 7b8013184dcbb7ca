package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/bloom"
	"github.com/fwojciec/hnlist/etree"
	"github.com/fwojciec/hnlist/fs"
	"github.com/fwojciec/hnlist/listing"
)

// Run executes the merge command.
func (c *MergeCmd) Run(deps *Dependencies) error {
	sets := make([][]*hnlist.Story, 0, len(c.Files))
	for _, path := range c.Files {
		l, err := readAnyListing(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
			return err
		}
		sets = append(sets, l.Results)
	}

	total := listing.Count(sets)
	seen := bloom.NewFilter(uint(total), bloom.DefaultFalsePositiveRate)
	merged := hnlist.NewListing(listing.Merge(sets, seen), deps.now())

	if deps.Logger != nil {
		deps.Logger.Info("merge",
			"files", len(c.Files),
			"stories", total,
			"kept", merged.Count,
			"distinct_ids", seen.EstimatedCount(),
		)
	}

	if err := writeJSON(deps, c.Out, merged); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
		return err
	}

	reportWritten(deps, c.Out, merged.Count)
	return nil
}

// readAnyListing reads a JSON listing, or an RSS feed when the extension
// is .xml or .rss.
func readAnyListing(path string) (*hnlist.Listing, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".rss":
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			return nil, hnlist.Errorf(hnlist.ENOTFOUND, "feed file %q not found", path)
		} else if err != nil {
			return nil, err
		}
		defer f.Close()
		return etree.ReadRSS(f)
	default:
		return fs.ReadListing(path)
	}
}
