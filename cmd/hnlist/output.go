package main

import (
	"fmt"

	"github.com/fwojciec/hnlist/fs"
)

// writeJSON writes v to path, or to stdout when path is empty.
func writeJSON(deps *Dependencies, path string, v any) error {
	if path != "" {
		return fs.WriteListing(path, v)
	}
	data, err := fs.Marshal(v)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}

// reportWritten confirms a file write on stdout. Nothing is printed when the
// result itself went to stdout.
func reportWritten(deps *Dependencies, path string, count int) {
	if path == "" {
		return
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d stories to %s\n", count, path)
}
