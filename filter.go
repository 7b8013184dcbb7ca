package hnlist

import (
	"context"
	"fmt"
	"strings"
)

// DefaultKeywords are the patterns used when a profile names none.
var DefaultKeywords = []string{
	"powerpoint",
	"pptx",
	"ppt",
	"slides?",
	"deck",
	"presentation",
	"claude",
	"anthropic",
	"openclaw",
}

// DefaultHighlight is the pattern used when a profile names no highlight.
const DefaultHighlight = "pptx"

// DefaultTopic is the classifier topic used when a profile names none.
const DefaultTopic = "PowerPoint (ppt/pptx/slides/deck/presentation) or Claude/Anthropic/OpenClaw + PowerPoint"

// FilterProfile describes which stories a filter keeps.
type FilterProfile struct {
	Name string `json:"name" yaml:"name"`

	// Keywords are regular expressions matched case-insensitively against
	// the story title and URL.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Highlight is a regular expression that flags matches of special
	// interest.
	Highlight string `json:"highlight" yaml:"highlight"`

	// Topic describes the subject for classifier-based filtering.
	Topic string `json:"topic" yaml:"topic"`
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() *FilterProfile {
	p := &FilterProfile{Name: "default"}
	p.ApplyDefaults()
	return p
}

// ApplyDefaults fills empty fields with built-in values.
func (p *FilterProfile) ApplyDefaults() {
	if len(p.Keywords) == 0 {
		p.Keywords = append([]string(nil), DefaultKeywords...)
	}
	if p.Highlight == "" {
		p.Highlight = DefaultHighlight
	}
	if p.Topic == "" {
		p.Topic = DefaultTopic
	}
}

// Validate returns an error if the profile cannot be used.
func (p *FilterProfile) Validate() error {
	for _, k := range p.Keywords {
		if strings.TrimSpace(k) == "" {
			return Errorf(EINVALID, "profile %q contains an empty keyword", p.Name)
		}
	}
	return nil
}

// Classifier decides whether a story is about a topic.
type Classifier interface {
	Classify(ctx context.Context, story *Story, topic string) (bool, error)
}

// StoryFilter selects stories from a listing.
type StoryFilter interface {
	Filter(ctx context.Context, stories []*Story) ([]*Match, error)
}

// SeenFilter tracks which story IDs have already been observed.
type SeenFilter interface {
	// Add records id as seen.
	Add(id string)

	// Test reports whether id might have been seen.
	Test(id string) bool
}

// ClassifyPrompt builds the yes/no question put to a language model.
func ClassifyPrompt(story *Story, topic string) string {
	return fmt.Sprintf("Decide if this HN item is about %s. Reply only YES or NO.\n\nTitle: %s\nURL: %s",
		topic, story.Title, story.URL)
}

// ParseVerdict reports whether a model reply is affirmative.
func ParseVerdict(reply string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(reply)), "YES")
}
