package main

import (
	"fmt"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/fs"
)

// Run executes the readme command.
func (c *ReadmeCmd) Run(deps *Dependencies) error {
	matches, err := fs.ReadMatches(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
		return err
	}

	updater := fs.NewReadmeUpdater()
	if deps.Now != nil {
		updater.Now = deps.Now
	}

	table := hnlist.FormatTable(matches.Results, c.Limit)
	changed, err := updater.Update(c.Readme, table)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
		return err
	}

	if !changed {
		fmt.Fprintf(deps.Stdout, "%s unchanged\n", c.Readme)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Updated %s\n", c.Readme)
	return nil
}
