package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/etree"
	"github.com/fwojciec/hnlist/fs"
	"github.com/fwojciec/hnlist/goquery"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	stories, err := c.extractAll(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
		return err
	}

	listing := hnlist.NewListing(stories, deps.now())
	if err := c.write(deps, listing); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
		return err
	}

	reportWritten(deps, c.Out, listing.Count)
	return nil
}

// extractAll extracts every file concurrently and concatenates the results
// in argument order.
func (c *ExtractCmd) extractAll(deps *Dependencies) ([]*hnlist.Story, error) {
	results := make([][]*hnlist.Story, len(c.Files))

	g, ctx := errgroup.WithContext(deps.Ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, path := range c.Files {
		g.Go(func() error {
			stories, err := c.extractFile(ctx, deps, path)
			if err != nil {
				return withPath(path, err)
			}
			results[i] = stories
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var stories []*hnlist.Story
	for _, r := range results {
		stories = append(stories, r...)
	}
	return stories, nil
}

// withPath prefixes err with the page file it came from. Application errors
// keep their code so the prefixed message reaches the user.
func withPath(path string, err error) error {
	if code := hnlist.ErrorCode(err); code != hnlist.EINTERNAL {
		return hnlist.Errorf(code, "%s: %s", path, hnlist.ErrorMessage(err))
	}
	return fmt.Errorf("%s: %w", path, err)
}

func (c *ExtractCmd) extractFile(ctx context.Context, deps *Dependencies, path string) ([]*hnlist.Story, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, hnlist.Errorf(hnlist.ENOTFOUND, "page file not found")
	} else if err != nil {
		return nil, err
	}

	if deps.Renderer != nil {
		var stories []*hnlist.Story
		err := deps.Renderer.Render(ctx, string(data), func(doc hnlist.Document) error {
			var err error
			stories, err = deps.Extractor.Extract(doc)
			return err
		})
		return stories, err
	}

	doc, err := goquery.NewDocument(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return deps.Extractor.Extract(doc)
}

func (c *ExtractCmd) write(deps *Dependencies, listing *hnlist.Listing) error {
	if c.Format != formatRSS {
		return writeJSON(deps, c.Out, listing)
	}

	if c.Out == "" {
		return etree.WriteRSS(deps.Stdout, listing, etree.DefaultFeedOptions())
	}
	var buf bytes.Buffer
	if err := etree.WriteRSS(&buf, listing, etree.DefaultFeedOptions()); err != nil {
		return err
	}
	return fs.WriteFileAtomic(c.Out, buf.Bytes())
}
