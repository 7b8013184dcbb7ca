package hnlist

import (
	"encoding/json"
	"time"
)

// Story is a single front-page entry.
//
// Optional fields are pointers; nil means the page did not carry the value
// and encodes as JSON null.
type Story struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	DT          *string `json:"dt"`
	Points      int     `json:"points"`
	Submitter   *string `json:"submitter"`
	CommentsURL *string `json:"commentsUrl"`
	NumComments int     `json:"numComments"`
}

// Validate returns an error if the story is missing required fields.
func (s *Story) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "story title required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "story URL required")
	}
	return nil
}

// Listing is the serialized form of a set of stories.
type Listing struct {
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	Results     []*Story  `json:"results"`
}

// NewListing wraps stories in a Listing stamped with now in UTC.
func NewListing(stories []*Story, now time.Time) *Listing {
	if stories == nil {
		stories = []*Story{}
	}
	return &Listing{
		GeneratedAt: now.UTC(),
		Count:       len(stories),
		Results:     stories,
	}
}

// MatchMode identifies how a story was selected by a filter.
type MatchMode string

// MatchMode constants.
const (
	MatchRegex MatchMode = "regex"
	MatchLLM   MatchMode = "llm"
)

// Match is a story selected by a filter.
type Match struct {
	Story
	MatchMode   MatchMode `json:"match_mode"`
	Highlighted bool      `json:"highlighted"`
}

// UnmarshalJSON decodes a match. Results written before the highlighted key
// existed carry pptx_present instead, which is read as Highlighted.
func (m *Match) UnmarshalJSON(data []byte) error {
	type match Match
	aux := struct {
		*match
		PPTXPresent *bool `json:"pptx_present"`
	}{match: (*match)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.PPTXPresent != nil && *aux.PPTXPresent {
		m.Highlighted = true
	}
	return nil
}

// MatchListing is the serialized form of filter results.
type MatchListing struct {
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	Results     []*Match  `json:"results"`
}

// NewMatchListing wraps matches in a MatchListing stamped with generatedAt.
func NewMatchListing(matches []*Match, generatedAt time.Time) *MatchListing {
	if matches == nil {
		matches = []*Match{}
	}
	return &MatchListing{
		GeneratedAt: generatedAt.UTC(),
		Count:       len(matches),
		Results:     matches,
	}
}
