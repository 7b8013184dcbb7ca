package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/fwojciec/hnlist"
)

// envelope is the on-disk shape shared by listings and filter results.
type envelope[T any] struct {
	GeneratedAt *time.Time `json:"generated_at"`
	Results     *[]*T      `json:"results"`
}

// ReadListing reads a listing file. Both the envelope written by
// WriteListing and a bare JSON array of stories are accepted.
func ReadListing(path string) (*hnlist.Listing, error) {
	f, err := openListing(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeListing(f)
}

// DecodeListing decodes a listing from r. See ReadListing.
func DecodeListing(r io.Reader) (*hnlist.Listing, error) {
	generatedAt, stories, err := decode[hnlist.Story](r)
	if err != nil {
		return nil, err
	}
	for i, s := range stories {
		if err := validateStory(i, s); err != nil {
			return nil, err
		}
	}
	return hnlist.NewListing(stories, generatedAt), nil
}

// ReadMatches reads a filter result file. Plain listings are accepted too;
// their stories carry no match mode.
func ReadMatches(path string) (*hnlist.MatchListing, error) {
	f, err := openListing(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	generatedAt, matches, err := decode[hnlist.Match](f)
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		if err := validateStory(i, &m.Story); err != nil {
			return nil, err
		}
	}
	return hnlist.NewMatchListing(matches, generatedAt), nil
}

// validateStory reports an invalid result entry with its position.
func validateStory(i int, s *hnlist.Story) error {
	if err := s.Validate(); err != nil {
		return hnlist.Errorf(hnlist.EINVALID, "result %d: %s", i, hnlist.ErrorMessage(err))
	}
	return nil
}

// openListing opens path, reporting a missing file as ENOTFOUND.
func openListing(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, hnlist.Errorf(hnlist.ENOTFOUND, "listing file %q not found", path)
	}
	return f, err
}

// WriteListing writes v as indented JSON to path atomically.
func WriteListing(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data)
}

// Marshal encodes v as indented JSON with a trailing newline.
func Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// decode reads an envelope or bare array, dropping null entries.
func decode[T any](r io.Reader) (time.Time, []*T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return time.Time{}, nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return time.Time{}, nil, hnlist.Errorf(hnlist.EINVALID, "empty listing")
	}

	if data[0] == '[' {
		var items []*T
		if err := json.Unmarshal(data, &items); err != nil {
			return time.Time{}, nil, hnlist.Errorf(hnlist.EINVALID, "invalid listing: %v", err)
		}
		return time.Time{}, compact(items), nil
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return time.Time{}, nil, hnlist.Errorf(hnlist.EINVALID, "invalid listing: %v", err)
	}
	if env.Results == nil {
		return time.Time{}, nil, hnlist.Errorf(hnlist.EINVALID, "listing has no results")
	}
	var generatedAt time.Time
	if env.GeneratedAt != nil {
		generatedAt = *env.GeneratedAt
	}
	return generatedAt, compact(*env.Results), nil
}

func compact[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
