package listing

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/hnlist"
)

// Ensure KeywordFilter implements hnlist.StoryFilter at compile time.
var _ hnlist.StoryFilter = (*KeywordFilter)(nil)

// KeywordFilter keeps stories whose title or URL matches any profile keyword.
type KeywordFilter struct {
	match     *regexp.Regexp
	highlight *regexp.Regexp
}

// NewKeywordFilter compiles the profile's keywords into a single
// case-insensitive alternation.
func NewKeywordFilter(profile *hnlist.FilterProfile) (*KeywordFilter, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if len(profile.Keywords) == 0 {
		return nil, hnlist.Errorf(hnlist.EINVALID, "profile %q has no keywords", profile.Name)
	}
	match, err := regexp.Compile("(?i)" + strings.Join(profile.Keywords, "|"))
	if err != nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "invalid keyword pattern: %v", err)
	}
	highlight, err := compileHighlight(profile.Highlight)
	if err != nil {
		return nil, err
	}
	return &KeywordFilter{match: match, highlight: highlight}, nil
}

// Filter returns the matching stories in input order.
func (f *KeywordFilter) Filter(ctx context.Context, stories []*hnlist.Story) ([]*hnlist.Match, error) {
	matches := []*hnlist.Match{}
	for _, s := range stories {
		text := matchText(s)
		if !f.match.MatchString(text) {
			continue
		}
		matches = append(matches, &hnlist.Match{
			Story:       *s,
			MatchMode:   hnlist.MatchRegex,
			Highlighted: highlighted(f.highlight, text),
		})
	}
	return matches, nil
}

func matchText(s *hnlist.Story) string {
	return s.Title + " " + s.URL
}

func compileHighlight(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, hnlist.Errorf(hnlist.EINVALID, "invalid highlight pattern: %v", err)
	}
	return re, nil
}

func highlighted(re *regexp.Regexp, text string) bool {
	return re != nil && re.MatchString(text)
}
