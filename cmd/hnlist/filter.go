package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/fs"
	"github.com/fwojciec/hnlist/listing"
	"github.com/fwojciec/hnlist/yaml"
)

// Run executes the filter command.
func (c *FilterCmd) Run(deps *Dependencies) error {
	result, err := c.filter(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
		return err
	}

	if err := writeJSON(deps, c.Out, result); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnlist.ErrorMessage(err))
		return err
	}

	reportWritten(deps, c.Out, result.Count)
	return nil
}

func (c *FilterCmd) filter(deps *Dependencies) (*hnlist.MatchListing, error) {
	profile, err := c.profile()
	if err != nil {
		return nil, err
	}

	in, err := fs.ReadListing(c.In)
	if err != nil {
		return nil, err
	}

	var f hnlist.StoryFilter
	if c.Mode == string(hnlist.MatchLLM) {
		if deps.Classifier == nil {
			return nil, hnlist.Errorf(hnlist.EINVALID, "no classifier configured")
		}
		f, err = listing.NewClassifierFilter(deps.Classifier, profile, c.RPS)
	} else {
		f, err = listing.NewKeywordFilter(profile)
	}
	if err != nil {
		return nil, err
	}

	matches, err := f.Filter(deps.Ctx, in.Results)
	if err != nil {
		return nil, err
	}
	return hnlist.NewMatchListing(matches, in.GeneratedAt), nil
}

// profile resolves the filter profile from --profile and --keywords.
func (c *FilterCmd) profile() (*hnlist.FilterProfile, error) {
	profile := hnlist.DefaultProfile()
	if c.Profile != "" {
		p, err := yaml.LoadProfile(c.Profile, c.ProfileName)
		if err != nil {
			return nil, err
		}
		profile = p
	}

	if c.Keywords != "" {
		profile.Keywords = splitKeywords(c.Keywords)
		if len(profile.Keywords) == 0 {
			return nil, hnlist.Errorf(hnlist.EINVALID, "no keywords in %q", c.Keywords)
		}
	}
	return profile, nil
}

func splitKeywords(s string) []string {
	var keywords []string
	for _, k := range strings.Split(s, "|") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
