package listing

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fwojciec/hnlist"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is the number of classifier calls in flight when
// ClassifierFilter.Concurrency is not set.
const DefaultConcurrency = 4

// Ensure ClassifierFilter implements hnlist.StoryFilter at compile time.
var _ hnlist.StoryFilter = (*ClassifierFilter)(nil)

// ClassifierFilter keeps stories a Classifier judges to be on topic.
type ClassifierFilter struct {
	Classifier hnlist.Classifier
	Topic      string

	// Limiter throttles classifier calls. Nil means unthrottled.
	Limiter *rate.Limiter

	// Concurrency bounds parallel classifier calls.
	Concurrency int

	highlight *regexp.Regexp
}

// NewClassifierFilter creates a ClassifierFilter for the profile's topic,
// allowing at most rps classifier calls per second. A non-positive rps
// disables throttling.
func NewClassifierFilter(c hnlist.Classifier, profile *hnlist.FilterProfile, rps float64) (*ClassifierFilter, error) {
	if profile.Topic == "" {
		return nil, hnlist.Errorf(hnlist.EINVALID, "profile %q has no topic", profile.Name)
	}
	highlight, err := compileHighlight(profile.Highlight)
	if err != nil {
		return nil, err
	}
	f := &ClassifierFilter{
		Classifier:  c,
		Topic:       profile.Topic,
		Concurrency: DefaultConcurrency,
		highlight:   highlight,
	}
	if rps > 0 {
		f.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return f, nil
}

// Filter classifies every story and returns the matches in input order.
// The first classifier error cancels the remaining calls and is returned.
func (f *ClassifierFilter) Filter(ctx context.Context, stories []*hnlist.Story) ([]*hnlist.Match, error) {
	concurrency := f.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	keep := make([]bool, len(stories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, s := range stories {
		g.Go(func() error {
			if f.Limiter != nil {
				if err := f.Limiter.Wait(gctx); err != nil {
					return err
				}
			}
			ok, err := f.Classifier.Classify(gctx, s, f.Topic)
			if err != nil {
				return fmt.Errorf("classifying story %q: %w", s.ID, err)
			}
			keep[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := []*hnlist.Match{}
	for i, s := range stories {
		if !keep[i] {
			continue
		}
		matches = append(matches, &hnlist.Match{
			Story:       *s,
			MatchMode:   hnlist.MatchLLM,
			Highlighted: highlighted(f.highlight, matchText(s)),
		})
	}
	return matches, nil
}
